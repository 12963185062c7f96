package models

type DownloadOutcome struct {
	Key       string `json:"key"`
	LocalPath string `json:"local_path"`
	Size      int64  `json:"size"`
	Succeeded bool   `json:"succeeded"`
	Error     string `json:"error,omitempty"`
}

type BatchStats struct {
	BucketName     string            `json:"bucket_name"`
	Prefix         string            `json:"prefix"`
	TotalFiles     int               `json:"total_files"`
	Downloaded     int               `json:"downloaded"`
	Failed         int               `json:"failed"`
	Errors         []string          `json:"errors,omitempty"`
	Outcomes       []DownloadOutcome `json:"outcomes,omitempty"`
	Success        bool              `json:"success"`
	TotalSizeBytes int64             `json:"total_size_bytes"`
	TotalSizeHuman string            `json:"total_size_human"`
	OperationTime  string            `json:"operation_time"`
	Duration       string            `json:"duration"`
}
