package logging

import "sync"

var bannerOnce sync.Once

// Banner emits the startup notice exactly once per process, no matter how
// many components ask for it.
func (l *Logger) Banner(revision string) {
	bannerOnce.Do(func() {
		l.Infof("attentive-adapter %s | client for the Attentive REST API", revision)
	})
}
