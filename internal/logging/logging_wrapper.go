package logging

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/account-manager/internal/metrics"
)

const RequestIDHeader = "X-Request-ID"

func LoggingWrapper(
	loggingName string,
	log *logrus.Logger,
	handler func(http.ResponseWriter, *http.Request, *LogData) error,
) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		logData := NewLogData(log)
		logData.AddData("requestID", requestID(req.Header.Get(RequestIDHeader)))
		log.Infof("Handler.%v.Start", loggingName)

		start := time.Now()
		endTimer := logData.AddTiming("duration")
		err := handler(w, req, logData.withRequest(req))
		endTimer()
		if err != nil {
			metrics.ObserveRequest(loggingName, metrics.OutcomeError, time.Since(start))
			logData.Log().WithError(err).Errorf("Handler.%v.Error", loggingName)
			return
		}

		metrics.ObserveRequest(loggingName, metrics.OutcomeSuccess, time.Since(start))
		logData.Log().Infof("Handler.%v.Complete", loggingName)
	}
}

// HumaMiddleware gives every Huma operation a LogData in its context and
// logs one entry per request, named after the operation ID.
func HumaMiddleware(log *logrus.Logger) func(ctx huma.Context, next func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		operationID := "unknown"
		if op := ctx.Operation(); op != nil {
			operationID = op.OperationID
		}

		logData := NewLogData(log)
		id := requestID(ctx.Header(RequestIDHeader))
		logData.AddData("requestID", id)
		logData.AddData("method", ctx.Method())
		ctx.SetHeader(RequestIDHeader, id)

		start := time.Now()
		endTimer := logData.AddTiming("duration")
		next(huma.WithValue(ctx, logDataKey{}, logData))
		endTimer()

		status := ctx.Status()
		logData.AddData("status", status)
		outcome := metrics.OutcomeSuccess
		if status >= http.StatusBadRequest {
			outcome = metrics.OutcomeError
		}
		metrics.ObserveRequest(operationID, outcome, time.Since(start))

		if outcome == metrics.OutcomeError {
			logData.Log().Warnf("Handler.%v.Error", operationID)
			return
		}
		logData.Log().Infof("Handler.%v.Complete", operationID)
	}
}

func (l *LogData) withRequest(req *http.Request) *LogData {
	l.AddData("method", req.Method)
	l.AddData("path", req.URL.Path)
	return l
}

func requestID(incoming string) string {
	if incoming != "" {
		return incoming
	}
	return uuid.Must(uuid.NewV4()).String()
}
