package core

import "log/slog"

type storeOptions struct {
	logFileName string
	logger      *slog.Logger
}

func defaultStoreOptions() storeOptions {
	return storeOptions{
		logFileName: DefaultLogFileName,
		logger:      slog.Default(),
	}
}

type Option func(*storeOptions)

func WithLogFileName(name string) Option {
	return func(o *storeOptions) {
		o.logFileName = name
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(o *storeOptions) {
		o.logger = logger
	}
}
