package e2e

import (
	"companion-lab/domain"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
)

type testConsultationSuite struct {
	BaseHTTPSuite
}

func TestConsultationSuite(t *testing.T) {
	suite.Run(t, &testConsultationSuite{})
}

// Runs against a freshly seeded server: the login user organizes e6,
// where 小李 (u99) opened a thread.
func (s *testConsultationSuite) TestOrganizerAnswersThread() {
	s.Run("Step 1: Login and bind a phone", func() {
		s.Step(s.T(), "Login")
		s.Login()
		var user domain.UserProfile
		s.Require().Equal(http.StatusOK, s.Call(http.MethodPost, "/phone", map[string]string{"phone": "13800138000"}, &user))
		s.Require().True(user.PhoneVerified)
	})

	s.Run("Step 2: Organizer sees every thread", func() {
		s.Step(s.T(), "Threads of e6")
		var consultation struct {
			Role    domain.Role `json:"role"`
			Threads []struct {
				CounterpartID string `json:"counterpartId"`
			} `json:"threads"`
		}
		s.Require().Equal(http.StatusOK, s.Call(http.MethodGet, "/events/e6/threads", nil, &consultation))
		s.Require().Equal(domain.Organizer, consultation.Role)
		s.Require().NotEmpty(consultation.Threads)
	})

	s.Run("Step 3: Reply lands in the counterpart thread", func() {
		s.Step(s.T(), "Reply to u99")
		var reply domain.Message
		s.Require().Equal(http.StatusCreated, s.Call(http.MethodPost, "/events/e6/threads/u99/replies", map[string]string{"content": "可以，早上五点小区门口见"}, &reply))
		s.Require().Equal("u99", reply.ReplyToID)
		s.Require().Equal(domain.JustNow, reply.Timestamp)
	})

	s.Run("Step 4: Outsider thread stays closed", func() {
		s.Step(s.T(), "Reply on e2 as a member")
		s.Require().Equal(http.StatusForbidden, s.Call(http.MethodPost, "/events/e2/threads/o2/replies", map[string]string{"content": "插一句"}, nil))
	})
}
