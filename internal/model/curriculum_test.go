package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurriculumResourceJSON(t *testing.T) {
	// 无链接的资源序列化为纯字符串
	data, err := json.Marshal(CurriculumResource{Name: "Mosh's Video"})
	require.NoError(t, err)
	assert.JSONEq(t, `"Mosh's Video"`, string(data))

	// 带链接的资源序列化为对象
	data, err = json.Marshal(CurriculumResource{Name: "W3Schools", URL: "https://www.w3schools.com/python/"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"W3Schools","url":"https://www.w3schools.com/python/"}`, string(data))

	// 两种形式都能读回
	var r CurriculumResource
	require.NoError(t, json.Unmarshal([]byte(`"Python Tutor"`), &r))
	assert.Equal(t, CurriculumResource{Name: "Python Tutor"}, r)

	require.NoError(t, json.Unmarshal([]byte(`{"name":"Real Python","url":"https://realpython.com/"}`), &r))
	assert.Equal(t, "Real Python", r.Name)
	assert.Equal(t, "https://realpython.com/", r.URL)
}
