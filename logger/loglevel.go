package logger

//go:generate go run github.com/pablor21/cenum/cmd/cenum -pkg .

/*cenum:
derive(text, yaml)
// LogLevel selects the minimum severity emitted by the cenum logger.
// The numbering matches log/slog's levels; any int8 value is usable.
pub enum LogLevel : int8 {
	LevelDebug = -4,
	LevelInfo  = 0,
	LevelWarn  = 4,
	LevelError = 8,
}
*/
