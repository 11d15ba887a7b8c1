package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/rs/zerolog"
)

// withTraceContext adds the New Relic trace and span ids of the request's
// transaction, if nrgin started one, to the log event.
func withTraceContext(c *gin.Context, e *zerolog.Event) *zerolog.Event {
	txn := nrgin.Transaction(c)
	if txn == nil {
		return e
	}
	md := txn.GetTraceMetadata()
	if md.TraceID == "" {
		return e
	}
	return e.Str("trace.id", md.TraceID).Str("span.id", md.SpanID)
}
