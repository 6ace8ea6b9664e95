package export

import (
	"io"

	internalsarif "github.com/chandan24042001s/qa-mcp-dashboard/internal/sarif"
	"github.com/chandan24042001s/qa-mcp-dashboard/internal/session"
)

// WriteSARIF writes the findings of r as a SARIF 2.1.0 log.
func WriteSARIF(w io.Writer, r *session.Result, opts Options) error {
	report, err := internalsarif.NewReport(r, internalsarif.Options{
		Version:    opts.Version,
		Repository: opts.Repository,
	})
	if err != nil {
		return err
	}
	return report.Write(w)
}
