package applier

import (
	"fmt"

	log "github.com/sirupsen/logrus"
)

// String renders the move as "before ---mask---> after"
func (m Move) String() string {
	return fmt.Sprintf("%s ---%s---> %s", m.Before, m.Element.PrettyPrint(m.Size), m.After)
}

// LogObserver returns an Observer that logs every move at debug level
func LogObserver(logger *log.Entry) Observer {
	return func(move Move) {
		logger.WithField("step", move.Step).Debug(move.String())
	}
}
