package logger

import (
	"log"
	"os"
)

// Logger é a interface para logging estruturado em pares chave/valor
type Logger interface {
	Info(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
	Debug(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
}

// SimpleLogger é uma implementação simples de Logger sobre o log padrão
type SimpleLogger struct {
	infoLogger  *log.Logger
	errorLogger *log.Logger
	debugLogger *log.Logger
	warnLogger  *log.Logger
}

// NewLogger cria uma nova instância de Logger
func NewLogger() Logger {
	flags := log.Ldate | log.Ltime
	return &SimpleLogger{
		infoLogger:  log.New(os.Stdout, "INFO: ", flags),
		errorLogger: log.New(os.Stderr, "ERROR: ", flags),
		debugLogger: log.New(os.Stdout, "DEBUG: ", flags),
		warnLogger:  log.New(os.Stdout, "WARN: ", flags),
	}
}

// Info registra uma mensagem de informação
func (l *SimpleLogger) Info(msg string, keysAndValues ...interface{}) {
	l.print(l.infoLogger, msg, keysAndValues...)
}

// Error registra uma mensagem de erro
func (l *SimpleLogger) Error(msg string, keysAndValues ...interface{}) {
	l.print(l.errorLogger, msg, keysAndValues...)
}

// Debug registra uma mensagem de debug
func (l *SimpleLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.print(l.debugLogger, msg, keysAndValues...)
}

// Warn registra uma mensagem de aviso
func (l *SimpleLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.print(l.warnLogger, msg, keysAndValues...)
}

// print emite a mensagem seguida dos pares chave/valor
func (l *SimpleLogger) print(out *log.Logger, msg string, keysAndValues ...interface{}) {
	if len(keysAndValues) == 0 {
		out.Println(msg)
		return
	}
	out.Println(append([]interface{}{msg}, keysAndValues...)...)
}

// NopLogger descarta todas as mensagens. Mantém a saída dos testes limpa.
type NopLogger struct{}

// NewNopLogger cria um Logger que não emite nada
func NewNopLogger() Logger {
	return NopLogger{}
}

func (NopLogger) Info(msg string, keysAndValues ...interface{})  {}
func (NopLogger) Error(msg string, keysAndValues ...interface{}) {}
func (NopLogger) Debug(msg string, keysAndValues ...interface{}) {}
func (NopLogger) Warn(msg string, keysAndValues ...interface{})  {}
