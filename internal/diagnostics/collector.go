package diagnostics

import (
	"errors"
	"fmt"
)

// One sentinel per fault class. The positioned message lives on the Diag
// saved to the collector; callers tell the classes apart with errors.Is.
var (
	LEX_ERROR_FOUND      = errors.New("lex error found")
	PARSE_ERROR_FOUND    = errors.New("parse error found")
	SEMANTIC_ERROR_FOUND = errors.New("semantic error found")
)

type Diag struct {
	Message string
}

type Collector struct {
	Diags []Diag
}

func New() *Collector {
	return &Collector{
		Diags: nil,
	}
}

func (collector *Collector) ReportAndSave(diag Diag) {
	fmt.Println(diag.Message)
	collector.Diags = append(collector.Diags, diag)
}
