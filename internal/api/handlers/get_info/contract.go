package get_info

type InfoService interface {
	Get(category string) map[string]interface{}
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
