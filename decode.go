package webhdfs

import "github.com/shangshujie365/webhdfs/jsontree"

// maxDiagLen bounds the parse diagnostic emitted on malformed JSON.
const maxDiagLen = 1024

// Decode parses the accumulated response body as JSON. It returns nil for
// an empty body (a valid outcome, e.g. a successful DELETE) and nil after
// a parse failure, which is reported through the request's logger. The
// returned tree is independent of the request and survives Close.
func (r *Request) Decode() *jsontree.Node {
	if r.buf.Len() == 0 {
		return nil
	}

	node, err := jsontree.Parse(r.buf.Bytes())
	if err != nil {
		diag := err.Error()
		if len(diag) > maxDiagLen {
			diag = diag[:maxDiagLen]
		}
		r.logger.Error().Str("error", diag).Msg("response parse failed")
		return nil
	}
	return node
}
