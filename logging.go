package ewah

import "github.com/sirupsen/logrus"

// log is the package-level logger. The teacher's builder and combinator
// code left commented-out fmt.Println calls at nearly every decision
// point (run coalescing, prey/predator selection, literal splicing); this
// promotes that intent into real, disableable structured logging. Nothing
// the library does on its own ever logs above Debug — it's a data
// structure, not a service.
var log = logrus.New()

func init() {
	log.SetLevel(logrus.WarnLevel)
}

// SetLogger replaces the package-level logger, e.g. to route it through
// an application's own logrus instance.
func SetLogger(l *logrus.Logger) {
	if l != nil {
		log = l
	}
}

// SetLevel adjusts the package-level logger's verbosity.
func SetLevel(level logrus.Level) {
	log.SetLevel(level)
}

func debugEnabled() bool {
	return log.IsLevelEnabled(logrus.DebugLevel)
}
