package model

import "encoding/json"

// CurriculumResource 课程资源，可只有名称，也可带外部链接
type CurriculumResource struct {
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
}

// MarshalJSON 无链接的资源序列化为纯字符串，与旧数据文件保持一致
func (r CurriculumResource) MarshalJSON() ([]byte, error) {
	if r.URL == "" {
		return json.Marshal(r.Name)
	}
	type alias CurriculumResource
	return json.Marshal(alias(r))
}

// UnmarshalJSON 同时接受 "name" 和 {"name":..,"url":..} 两种形式
func (r *CurriculumResource) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		r.Name = name
		r.URL = ""
		return nil
	}
	type alias CurriculumResource
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*r = CurriculumResource(a)
	return nil
}

// CurriculumDay 课程表中的一天
// swagger:model CurriculumDay
type CurriculumDay struct {
	Day       int                  `json:"day"`
	Topic     string               `json:"topic"`
	Resources []CurriculumResource `json:"resources"`
	Practice  string               `json:"practice"`
}

// CurriculumWeek 一周课程（7天）
// swagger:model CurriculumWeek
type CurriculumWeek struct {
	Week  int             `json:"week"`
	Title string          `json:"title"`
	Days  []CurriculumDay `json:"days"`
}

// DayInfo 单日课程信息及其所属周
// swagger:model DayInfo
type DayInfo struct {
	Day       int                  `json:"day"`
	Week      int                  `json:"week"`
	WeekTitle string               `json:"weekTitle"`
	Topic     string               `json:"topic"`
	Practice  string               `json:"practice"`
	Resources []CurriculumResource `json:"resources"`
}
