package util

const (
	DateFormat = "2006-01-02"
	TimeFormat = "2006-01-02 15:04:05"
)

const (
	StorageLocal = "local"
	StorageMinio = "minio"
)

// 文件上传相关常量
const (
	MimeText        = "text/"
	MimeOctetStream = "application/octet-stream"
)

var (
	AllowedSolutionExtensions = []string{".py"}
)
