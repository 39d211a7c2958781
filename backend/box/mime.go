package box

import (
	"mime"
	"path"
	"strings"
)

// extraMimeTypes covers common extensions the platform mime database may lack.
// Detection is by extension only; content is never sniffed.
var extraMimeTypes = map[string]string{
	".7z":   "application/x-7z-compressed",
	".csv":  "text/csv",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".gz":   "application/gzip",
	".md":   "text/markdown",
	".pdf":  "application/pdf",
	".ppt":  "application/vnd.ms-powerpoint",
	".pptx": "application/vnd.openxmlformats-officedocument.presentationml.presentation",
	".rar":  "application/vnd.rar",
	".tar":  "application/x-tar",
	".xls":  "application/vnd.ms-excel",
	".xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	".yaml": "application/yaml",
	".yml":  "application/yaml",
	".zip":  "application/zip",
}

// mimeTypeByName derives a MIME type from a file name's extension. Unknown
// extensions yield an empty string.
func mimeTypeByName(name string) string {
	ext := strings.ToLower(path.Ext(name))
	if ext == "" {
		return ""
	}

	if t, ok := extraMimeTypes[ext]; ok {
		return t
	}

	t := mime.TypeByExtension(ext)
	if i := strings.Index(t, ";"); i >= 0 {
		t = t[:i]
	}
	return strings.TrimSpace(t)
}
