package model

// ProgressDocument 进度数据文件的完整结构
// 五个顶层映射的字段名是对外工具读取该文件的约定，不可改名。
// day 在文件中以字符串键存储（"1".."21"）。
// swagger:model ProgressDocument
type ProgressDocument struct {
	Progress      map[string]DayProgress  `json:"progress"`
	Notes         map[string]string       `json:"notes"`
	Uploads       map[string]UploadRecord `json:"uploads"`
	TimeSpent     map[string]int          `json:"time_spent"`
	ResourcesUsed map[string][]string     `json:"resources_used"`
}

// NewProgressDocument 返回五个映射均为空的初始文档
func NewProgressDocument() *ProgressDocument {
	return &ProgressDocument{
		Progress:      map[string]DayProgress{},
		Notes:         map[string]string{},
		Uploads:       map[string]UploadRecord{},
		TimeSpent:     map[string]int{},
		ResourcesUsed: map[string][]string{},
	}
}

// DayProgress 单日进度
// CompletionDate 在标记完成时写入（格式 2006-01-02），取消完成不清除。
type DayProgress struct {
	Completed        bool   `json:"completed"`
	CompletionDate   string `json:"completion_date,omitempty"`
	TimeSpentMinutes int    `json:"time_spent_minutes"`
}

// UploadRecord 单日练习解答文件的上传记录，不含文件内容
// ObjectName 是存储后端中的实际路径，旧版数据文件没有该字段。
type UploadRecord struct {
	Filename   string `json:"filename"`
	UploadTime string `json:"upload_time"`
	ObjectName string `json:"object_name,omitempty"`
}

// ProgressRow 归一化的单日进度行，缺失的天按未开始补齐
// swagger:model ProgressRow
type ProgressRow struct {
	Day              int    `json:"day"`
	Completed        bool   `json:"completed"`
	CompletionDate   string `json:"completionDate,omitempty"`
	TimeSpentMinutes int    `json:"timeSpentMinutes"`
}

// DayDetail 天追踪页使用的聚合视图
// swagger:model DayDetail
type DayDetail struct {
	ProgressRow
	Note          string        `json:"note"`
	ResourcesUsed []string      `json:"resourcesUsed"`
	Upload        *UploadRecord `json:"upload,omitempty"`
}
