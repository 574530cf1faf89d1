// Package logging is the logging subsystem of the desktop shell: it picks
// a log file, builds a console sink and a file sink on top of rs/zerolog,
// and commits the resulting dispatcher exactly once per process.
//
// Destination policies
//   - "session": a fresh session_<timestamp>.log per run
//   - "unified": the first app_<i>.log strictly smaller than MaxFileSize,
//     or the next unused number when every existing file is full
//   - anything else: a single app.log
//
// Both sinks share the line format
//
//	[2006-01-02 15:04:05 INFO target] message
//
// and the console sink colors the level. Each sink has its own threshold,
// and the windowing runtime targets "tao" and "wry" are held at Error.
//
// Typical usage
//
//	if err := logging.InitLogger(logging.DefaultSettings()); err != nil {
//		fmt.Fprintln(os.Stderr, err)
//	}
//	logging.LogMessage("warn", "window lost focus", "app/page.tsx:42")
//
//	log := logging.Default().For("updater")
//	log.ErrorWith().Err(err).Str("channel", "beta").Msg("update check failed")
package logging
