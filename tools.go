//go:build tools

package soltype

import (
	_ "github.com/vektra/mockery/v2"
)
