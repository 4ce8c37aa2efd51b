package core

const (
	DefaultLogFileName = "poeckt.aof" // Name of the log file inside the store directory

	// 0 (special bit - ignored), 7 (rwx - owner), 5 (r-x - user group), 5 (r-x - others)
	StoreDirMode = 0755
	LogFileMode  = 0644
)
