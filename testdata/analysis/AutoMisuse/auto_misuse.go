//go:build cenum

package testdata

import "github.com/Phantomical/cenum"

var touched = cenum.Auto // want `Auto can only value a member of a //cenum:enum const block`
