// golangcilintcenum package provides a plugin for golangci-lint to
// integrate the cenum analyzer. To build a custom golangci-lint binary
// with this plugin, use the following command at this package's directory:
//
//	golangci-lint custom
//
// Now you will have a golangci-lint-cenum binary that you can use to lint
// your Go code with the cenum analyzer.
package golangcilintcenum

import (
	"github.com/golangci/plugin-module-register/register"
	"golang.org/x/tools/go/analysis"

	"github.com/Phantomical/cenum/pkg/cenumanalysis"
)

func init() {
	register.Plugin("cenum", New)
}

func New(settings any) (register.LinterPlugin, error) {
	return CenumLinter{}, nil
}

type CenumLinter struct{}

func (CenumLinter) BuildAnalyzers() ([]*analysis.Analyzer, error) {
	return []*analysis.Analyzer{cenumanalysis.Analyzer}, nil
}

func (CenumLinter) GetLoadMode() string {
	return register.LoadModeSyntax
}
