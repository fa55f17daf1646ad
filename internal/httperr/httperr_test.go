package httperr

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestWriteHelpers(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name   string
		write  func(c *gin.Context)
		status int
		body   string
	}{
		{
			name:   "conflito de horário",
			write:  func(c *gin.Context) { Conflict(c, "time_conflict", "Já existe agendamento neste horário.") },
			status: http.StatusConflict,
			body:   `{"error_code":"time_conflict","message":"Já existe agendamento neste horário."}`,
		},
		{
			name:   "ação restrita ao dono",
			write:  func(c *gin.Context) { Forbidden(c, "owner_only", "Apenas o dono do salão pode cadastrar profissionais.") },
			status: http.StatusForbidden,
			body:   `{"error_code":"owner_only","message":"Apenas o dono do salão pode cadastrar profissionais."}`,
		},
		{
			name:   "regra de negócio vira 400",
			write:  func(c *gin.Context) { BadRequest(c, "slot_in_past", "Este horário já passou.") },
			status: http.StatusBadRequest,
			body:   `{"error_code":"slot_in_past","message":"Este horário já passou."}`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			tc.write(c)

			assert.Equal(t, tc.status, w.Code)
			assert.JSONEq(t, tc.body, w.Body.String())
		})
	}
}

func TestBusinessError(t *testing.T) {
	err := ErrBusiness("time_conflict")

	assert.True(t, IsBusiness(err, "time_conflict"))
	assert.False(t, IsBusiness(err, "slot_in_past"))
	assert.False(t, IsBusiness(assert.AnError, "time_conflict"))
	assert.Equal(t, "time_conflict", err.Error())
}
