package fs

// FSConfig holds configuration for the fs role.
type FSConfig struct {
	// MaxReadBytes caps how much ReadFile and Watch will load into memory.
	// Zero means no cap.
	MaxReadBytes int64 `yaml:"max_read_bytes" toml:"max_read_bytes" json:"max_read_bytes" env:"MAXREADBYTES"`

	// WriteMode is the permission mode for files created by WriteFile and
	// AppendFile, in octal string form (e.g. "0644").
	WriteMode string `yaml:"write_mode" toml:"write_mode" json:"write_mode" env:"WRITEMODE"`

	// WatchDebounceMillis is how long Watch waits after a change before
	// reading the file, coalescing editor write bursts.
	WatchDebounceMillis int `yaml:"watch_debounce_millis" toml:"watch_debounce_millis" json:"watch_debounce_millis" env:"WATCHDEBOUNCEMILLIS"`
}
