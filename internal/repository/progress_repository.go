package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"pylearn_tracker/internal/model"
	"pylearn_tracker/internal/util"
	"pylearn_tracker/pkg/monitoring"
)

// ProgressRepository 进度数据文件的唯一拥有者
// 其他组件一律通过它读写，不直接操作文件。
type ProgressRepository struct {
	Path string
}

func NewProgressRepository(path string) *ProgressRepository {
	return &ProgressRepository{Path: path}
}

// Initialize 文件不存在时创建包含五个空映射的初始文档
// 介质不可写视为致命错误，由调用方终止会话。
func (r *ProgressRepository) Initialize() error {
	if _, err := os.Stat(r.Path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("%w: %v", util.ErrStorageUnavailable, err)
	}
	return r.Save(model.NewProgressDocument())
}

// Load 读取完整文档，按需就地修复
// 文件缺失、非法 JSON、顶层键缺失都不让读取失败：
// 用空映射替换后立即回写，旧版本文件由此自动升级。
func (r *ProgressRepository) Load() (*model.ProgressDocument, error) {
	monitoring.StoreOperations.WithLabelValues("load").Inc()

	raw, err := os.ReadFile(r.Path)
	if err != nil {
		if os.IsNotExist(err) {
			doc := model.NewProgressDocument()
			if err := r.saveRepaired(doc); err != nil {
				return nil, err
			}
			return doc, nil
		}
		return nil, fmt.Errorf("%w: %v", util.ErrStorageUnavailable, err)
	}

	doc := &model.ProgressDocument{}
	repaired := false
	if err := json.Unmarshal(raw, doc); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			// 单个键类型非法：encoding/json 仍会解码其余字段，
			// 保留这些数据，坏键留空由下方按键补齐。
			repaired = true
		} else {
			// 字节流根本不是 JSON，才整体重置
			doc = model.NewProgressDocument()
			repaired = true
		}
	}

	if doc.Progress == nil {
		doc.Progress = map[string]model.DayProgress{}
		repaired = true
	}
	if doc.Notes == nil {
		doc.Notes = map[string]string{}
		repaired = true
	}
	if doc.Uploads == nil {
		doc.Uploads = map[string]model.UploadRecord{}
		repaired = true
	}
	if doc.TimeSpent == nil {
		doc.TimeSpent = map[string]int{}
		repaired = true
	}
	if doc.ResourcesUsed == nil {
		doc.ResourcesUsed = map[string][]string{}
		repaired = true
	}

	if repaired {
		if err := r.saveRepaired(doc); err != nil {
			return nil, err
		}
	}

	return doc, nil
}

func (r *ProgressRepository) saveRepaired(doc *model.ProgressDocument) error {
	monitoring.StoreOperations.WithLabelValues("repair").Inc()
	return r.Save(doc)
}

// Save 全量覆盖写入，先写临时文件再改名
// 缩进与旧实现的 indent=4 保持一致，外部脚本可继续 diff。
func (r *ProgressRepository) Save(doc *model.ProgressDocument) error {
	monitoring.StoreOperations.WithLabelValues("save").Inc()

	data, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(r.Path)
	tmp, err := os.CreateTemp(dir, ".progress-*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %v", util.ErrStorageUnavailable, err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: %v", util.ErrStorageUnavailable, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: %v", util.ErrStorageUnavailable, err)
	}

	if err := os.Rename(tmp.Name(), r.Path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: %v", util.ErrStorageUnavailable, err)
	}

	return nil
}

// Ping 健康检查：数据文件可访问即视为存储可用
func (r *ProgressRepository) Ping() error {
	if _, err := os.Stat(r.Path); err != nil {
		return fmt.Errorf("%w: %v", util.ErrStorageUnavailable, err)
	}
	return nil
}
