package main

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"riderequest/pkg/client"
	"riderequest/pkg/models"
)

type fakeGateway struct {
	calls   int
	submit  *models.RideRequestResponse
	list    *models.RideRequestListResponse
	err     error
	lastArg []string
}

func (f *fakeGateway) Submit(ctx context.Context, source, dest, userID string) (*models.RideRequestResponse, error) {
	f.calls++
	f.lastArg = []string{source, dest, userID}
	return f.submit, f.err
}

func (f *fakeGateway) GetAll(ctx context.Context) (*models.RideRequestListResponse, error) {
	f.calls++
	return f.list, f.err
}

func runWith(gw gateway, args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, gw, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_NoCommandPrintsUsage(t *testing.T) {
	gw := &fakeGateway{}
	code, out, _ := runWith(gw)
	require.Equal(t, 0, code)
	require.Contains(t, out, "Usage:")
	require.Zero(t, gw.calls)
}

func TestRun_UnknownCommand(t *testing.T) {
	gw := &fakeGateway{}
	code, _, errOut := runWith(gw, "cancel")
	require.NotEqual(t, 0, code)
	require.Contains(t, errOut, "Unknown command: cancel")
	require.Contains(t, errOut, "Usage:")
	require.Zero(t, gw.calls)
}

func TestRun_SubmitMissingParams(t *testing.T) {
	gw := &fakeGateway{}
	code, _, errOut := runWith(gw, "submit", "123 Main St")
	require.NotEqual(t, 0, code)
	require.Contains(t, errOut, "missing parameters")
	require.Zero(t, gw.calls)
}

func TestRun_Submit(t *testing.T) {
	id := int64(1)
	gw := &fakeGateway{submit: &models.RideRequestResponse{
		Success: true,
		Message: "Ride request submitted successfully",
		Data:    &models.RideRequest{ID: &id, UserID: "user123", SourceLocation: "123 Main St", DestLocation: "456 Oak Ave", CreatedAt: time.Now()},
	}}

	code, out, _ := runWith(gw, "submit", "123 Main St", "456 Oak Ave", "user123")
	require.Equal(t, 0, code)
	require.Equal(t, []string{"123 Main St", "456 Oak Ave", "user123"}, gw.lastArg)
	require.Contains(t, out, "Success!")
	require.Contains(t, out, `"message": "Ride request submitted successfully"`)
}

func TestRun_SubmitHTTPError(t *testing.T) {
	gw := &fakeGateway{err: &client.HTTPError{StatusCode: 400, Message: "Missing required fields"}}

	code, _, errOut := runWith(gw, "submit", "a", "b", "c")
	require.Equal(t, 1, code)
	require.Contains(t, errOut, "Status: 400")
	require.Contains(t, errOut, "Missing required fields")
}

func TestRun_GetAll(t *testing.T) {
	gw := &fakeGateway{list: &models.RideRequestListResponse{
		Success: true,
		Count:   2,
		Data: []*models.RideRequest{
			{UserID: "b", SourceLocation: "s", DestLocation: "d"},
			{UserID: "a", SourceLocation: "s", DestLocation: "d"},
		},
	}}

	code, out, _ := runWith(gw, "getall")
	require.Equal(t, 0, code)
	require.Contains(t, out, "Found 2 ride requests")
	require.Contains(t, out, `"user_id": "b"`)
}

func TestRun_GetAllTransportError(t *testing.T) {
	gw := &fakeGateway{err: errors.New("connection refused")}

	code, _, errOut := runWith(gw, "getall")
	require.Equal(t, 1, code)
	require.Contains(t, errOut, "Message: connection refused")
}
