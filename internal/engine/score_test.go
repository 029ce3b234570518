package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreSession(t *testing.T) {
	weights := DefaultScoreWeights()

	t.Run("empty session scores zero", func(t *testing.T) {
		assert.Zero(t, ScoreSession(NewSession("s"), weights))
	})

	t.Run("name plus email", func(t *testing.T) {
		sess := NewSession("s")
		sess.Contact.Name = "John"
		sess.Contact.Email = "john@x.com"
		assert.InDelta(t, 5, ScoreSession(sess, weights), 1e-9)
	})

	t.Run("every field populated", func(t *testing.T) {
		sess := fullyPopulatedSession()
		assert.InDelta(t, 16, ScoreSession(sess, weights), 1e-9)
	})
}

func TestMergeEntities(t *testing.T) {
	weights := DefaultScoreWeights()

	t.Run("non empty values overwrite", func(t *testing.T) {
		sess := NewSession("s")
		sess.Business.Revenue = "$20,000"

		MergeEntities(sess, ExtractedEntities{Revenue: "$35,000", BusinessType: "retail"}, weights)

		assert.Equal(t, "$35,000", sess.Business.Revenue)
		assert.Equal(t, "retail", sess.Business.Type)
	})

	t.Run("empty values never clear state", func(t *testing.T) {
		sess := NewSession("s")
		sess.Contact.Email = "a@b.com"
		sess.Financing.Amount = "50,000"

		MergeEntities(sess, ExtractedEntities{}, weights)

		assert.Equal(t, "a@b.com", sess.Contact.Email)
		assert.Equal(t, "50,000", sess.Financing.Amount)
	})

	t.Run("score recomputed not accumulated", func(t *testing.T) {
		sess := NewSession("s")

		MergeEntities(sess, ExtractedEntities{Email: "a@b.com"}, weights)
		assert.InDelta(t, 3, sess.InformationScore, 1e-9)

		// Replaying the same value leaves the score unchanged.
		MergeEntities(sess, ExtractedEntities{Email: "a@b.com"}, weights)
		assert.InDelta(t, 3, sess.InformationScore, 1e-9)

		MergeEntities(sess, ExtractedEntities{Phone: "5551234567"}, weights)
		assert.InDelta(t, 5, sess.InformationScore, 1e-9)
	})
}

func fullyPopulatedSession() *Session {
	sess := NewSession("s")
	sess.Contact.Name = "Sarah Johnson"
	sess.Contact.Email = "sarah@x.com"
	sess.Contact.Phone = "5551234567"
	sess.Contact.BusinessName = "Sarah's Diner"
	sess.Business.Type = "restaurant"
	sess.Business.Revenue = "$80,000"
	sess.Business.Employees = "12"
	sess.Business.TimeInBusiness = "5 years"
	sess.Financing.Amount = "100,000"
	sess.Financing.Purpose = "equipment"
	sess.Financing.CreditScore = "680"
	return sess
}
