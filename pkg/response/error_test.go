package response

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	pkgErrors "github.com/vogiaan1904/barberqueue/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestParseHTTPError(t *testing.T) {
	code, resp := ParseHTTPError(pkgErrors.NewHTTPError(40901, "Barber busy", http.StatusConflict))
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, 40901, resp.ErrorCode)

	code, resp = ParseHTTPError(pkgErrors.NewHTTPError(40001, "Bad", 0))
	assert.Equal(t, http.StatusBadRequest, code)

	code, resp = ParseHTTPError(errors.New("boom"))
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "Internal server error", resp.Message)
}

func TestParseGRPCError(t *testing.T) {
	err := ParseGRPCError(pkgErrors.NewGRPCError("BQ004", "Queue is full", codes.ResourceExhausted))
	st, ok := status.FromError(err)
	assert.True(t, ok)
	assert.Equal(t, codes.ResourceExhausted, st.Code())
	assert.Equal(t, "BQ004 - Queue is full", st.Message())

	st, _ = status.FromError(ParseGRPCError(errors.New("boom")))
	assert.Equal(t, codes.Internal, st.Code())
}
