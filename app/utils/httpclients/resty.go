package httpclients

import (
	"context"
	"time"

	"github.com/murayeeto/HornetHelper/app/utils/contextkeys"
	"github.com/murayeeto/HornetHelper/app/utils/logger"
	"github.com/sirupsen/logrus"
	"resty.dev/v3"
)

func NewClient(clientName string) *resty.Client {
	client := resty.New()
	client.AddRequestMiddleware(func(c *resty.Client, r *resty.Request) error {
		start := time.Now()
		ctx := context.WithValue(r.Context(), contextkeys.HttpClientStartsAt{}, start)
		ctx = context.WithValue(ctx, contextkeys.HttpClientRequestBody{}, r.Body)
		r.SetContext(ctx)
		return nil
	})
	client.AddResponseMiddleware(func(c *resty.Client, r *resty.Response) error {
		logger := logger.GetLogger()
		requestID := r.Request.Context().Value(contextkeys.RequestId{})
		startTime, _ := r.Request.Context().Value(contextkeys.HttpClientStartsAt{}).(time.Time)
		requestBody := r.Request.Context().Value(contextkeys.HttpClientRequestBody{})
		latency := time.Since(startTime)
		var responseBody any
		if !r.Request.DoNotParseResponse {
			responseBody = r.Result()
		}
		logger.WithFields(logrus.Fields{
			"request_id": requestID,
			"client":     clientName,
			"status":     r.StatusCode(),
			"method":     r.Request.RawRequest.Method,
			"path":       r.Request.RawRequest.URL.Path,
			"req_body":   requestBody,
			"resp_body":  responseBody,
			"latency":    latency.String(),
		}).Info("")
		return nil
	})
	return client
}
