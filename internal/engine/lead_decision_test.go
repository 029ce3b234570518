package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lendora/loanflow/internal/leads"
)

func TestLeadEligible(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name  string
		setup func(*Session)
		want  bool
	}{
		{
			name:  "empty session",
			setup: func(s *Session) {},
			want:  false,
		},
		{
			name: "score below threshold",
			setup: func(s *Session) {
				s.Contact.Email = "a@b.com" // 3
			},
			want: false,
		},
		{
			name: "no contact channel",
			setup: func(s *Session) {
				s.Contact.Name = "John"               // 2
				s.Business.Type = "restaurant"        // 1
				s.Business.Revenue = "$50,000"        // 2
				s.Business.TimeInBusiness = "3 years" // 1
			},
			want: false,
		},
		{
			name: "contact but no business signal",
			setup: func(s *Session) {
				s.Contact.Name = "John"     // 2
				s.Contact.Email = "a@b.com" // 3
			},
			want: false,
		},
		{
			name: "email plus revenue clears the bar",
			setup: func(s *Session) {
				s.Contact.Email = "a@b.com"    // 3
				s.Business.Revenue = "$50,000" // 2
			},
			want: true,
		},
		{
			name: "phone plus loan amount clears the bar",
			setup: func(s *Session) {
				s.Contact.Phone = "5551234567" // 2
				s.Contact.Name = "John"        // 2
				s.Financing.Amount = "25,000"  // 1.5
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess := NewSession("s")
			tt.setup(sess)
			sess.InformationScore = ScoreSession(sess, cfg.ScoreWeights)
			assert.Equal(t, tt.want, LeadEligible(sess, &cfg))
		})
	}
}

func TestEvaluateLead_Snapshot(t *testing.T) {
	cfg := DefaultConfig()
	sess := fullyPopulatedSession()
	sess.InformationScore = ScoreSession(sess, cfg.ScoreWeights)

	lead := EvaluateLead(sess, &cfg, "chat_widget")
	require.NotNil(t, lead)

	assert.NotEmpty(t, lead.ID)
	assert.Equal(t, sess.ID, lead.SessionID)
	assert.Equal(t, "Sarah Johnson", lead.Name)
	assert.Equal(t, "sarah@x.com", lead.Email)
	assert.Equal(t, "5551234567", lead.Phone)
	assert.Equal(t, "restaurant", lead.BusinessType)
	assert.Equal(t, "$80,000", lead.Revenue)
	assert.Equal(t, "100,000", lead.LoanAmount)
	assert.Equal(t, "chat_widget", lead.Source)
	assert.InDelta(t, sess.InformationScore, lead.QualificationScore, 1e-9)
	assert.False(t, lead.CreatedAt.IsZero())
}

func TestEvaluateLead_NilWhenIneligible(t *testing.T) {
	cfg := DefaultConfig()
	sess := NewSession("s")
	sess.Contact.Email = "a@b.com"
	sess.InformationScore = ScoreSession(sess, cfg.ScoreWeights)

	assert.Nil(t, EvaluateLead(sess, &cfg, "chat_widget"))
}

func TestLeadPriority(t *testing.T) {
	cfg := DefaultConfig()

	t.Run("high needs score and all three signals", func(t *testing.T) {
		sess := fullyPopulatedSession()
		sess.InformationScore = ScoreSession(sess, cfg.ScoreWeights)

		lead := EvaluateLead(sess, &cfg, "chat_widget")
		require.NotNil(t, lead)
		assert.Equal(t, leads.PriorityHigh, lead.Priority)
	})

	t.Run("high score without tenure is medium", func(t *testing.T) {
		sess := fullyPopulatedSession()
		sess.Business.TimeInBusiness = ""
		sess.InformationScore = ScoreSession(sess, cfg.ScoreWeights)

		lead := EvaluateLead(sess, &cfg, "chat_widget")
		require.NotNil(t, lead)
		assert.Equal(t, leads.PriorityMedium, lead.Priority)
	})

	t.Run("medium needs a financial figure", func(t *testing.T) {
		sess := NewSession("s")
		sess.Contact.Email = "a@b.com"    // 3
		sess.Contact.Phone = "5551234567" // 2
		sess.Business.Revenue = "$30,000" // 2
		sess.InformationScore = ScoreSession(sess, cfg.ScoreWeights)

		lead := EvaluateLead(sess, &cfg, "chat_widget")
		require.NotNil(t, lead)
		assert.Equal(t, leads.PriorityMedium, lead.Priority)
	})

	t.Run("qualified but thin is low", func(t *testing.T) {
		sess := NewSession("s")
		sess.Contact.Email = "a@b.com"     // 3
		sess.Business.Type = "restaurant"  // 1
		sess.Financing.CreditScore = "680" // 1
		sess.InformationScore = ScoreSession(sess, cfg.ScoreWeights)

		lead := EvaluateLead(sess, &cfg, "chat_widget")
		require.NotNil(t, lead)
		assert.Equal(t, leads.PriorityLow, lead.Priority)
	})
}

func TestInterestLevel(t *testing.T) {
	cfg := DefaultConfig()

	build := func(turns ...string) *Session {
		sess := NewSession("s")
		sess.Contact.Email = "a@b.com"
		sess.Business.Revenue = "$30,000"
		sess.Contact.Name = "John"
		for _, turn := range turns {
			sess.AppendTurn(ChatRoleUser, turn)
		}
		sess.InformationScore = ScoreSession(sess, cfg.ScoreWeights)
		return sess
	}

	t.Run("urgency words read high", func(t *testing.T) {
		lead := EvaluateLead(build("I need funding asap"), &cfg, "chat_widget")
		require.NotNil(t, lead)
		assert.Equal(t, leads.InterestHigh, lead.InterestLevel)
	})

	t.Run("hedging words read medium", func(t *testing.T) {
		lead := EvaluateLead(build("just considering my options"), &cfg, "chat_widget")
		require.NotNil(t, lead)
		assert.Equal(t, leads.InterestMedium, lead.InterestLevel)
	})

	t.Run("high tier beats medium across turns", func(t *testing.T) {
		lead := EvaluateLead(build("I'm interested", "actually I need this today"), &cfg, "chat_widget")
		require.NotNil(t, lead)
		assert.Equal(t, leads.InterestHigh, lead.InterestLevel)
	})

	t.Run("no signal reads low", func(t *testing.T) {
		lead := EvaluateLead(build("here is my info"), &cfg, "chat_widget")
		require.NotNil(t, lead)
		assert.Equal(t, leads.InterestLow, lead.InterestLevel)
	})
}
