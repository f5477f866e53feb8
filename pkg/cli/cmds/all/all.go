// Package all registers every optional shell command.
package all

import (
	_ "github.com/robotalks/crsf.go/pkg/cli/cmds/link"
	_ "github.com/robotalks/crsf.go/pkg/cli/cmds/rc"
)
