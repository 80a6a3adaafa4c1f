// Package logger writes leveled messages to a log file and to a colored
// console at the same time.
//
// # Lifecycle
//
// A Logger is bound to an identifier; the log file is <identifier>.log.
// Binding truncates the file and writes a banner:
//
//	Vac'cuum log system
//	Started: 2024-05-01 10:00:00
//	=============================================
//
// Binding again closes the previous file first. Close releases the file;
// dispatch calls on an unbound Logger print a console warning and are not
// written to any file.
//
//	l, err := logger.Open("app", logger.Options{})
//	if err != nil {
//	    return err
//	}
//	defer l.Close()
//
// # Levels
//
// Every call is written to both outputs, there is no level filtering:
//
//	l.Log("plain")           // white
//	l.Info("ready")          // cyan
//	l.Success("saved")       // green
//	l.Warn("disk at 90%")    // yellow
//	l.Error("retrying")      // red
//	l.Critical("giving up")  // red on white, may open the log file
//	l.Exception(err, true)   // red on white, opens the log file if asked
//
// # Line Format
//
//	[<timestamp> ]:: <tag> [from [<stack>]: \t]<content>
//
// The timestamp and stack segments are controlled by Configure. The stack
// starts at the caller of the logging method; logger frames are left out.
// TagScheme selects the tag text (PlainTags, SymbolTags or HexTags).
//
// # Concurrency
//
// Each call holds one lock for its whole duration, covering the file, the
// settings and the console colors, so lines never interleave and colors
// never leak between calls of the same Logger.
package logger
