package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tdlam/formdesk/internal/apperr"
	"github.com/tdlam/formdesk/internal/dto"
)

// publishedForm builds a published form with one question and returns both ids.
func publishedForm(t *testing.T, e *env, ownerToken string) (string, string) {
	t.Helper()
	formID := e.createForm(t, ownerToken, "Survey")
	questionID := e.addQuestion(t, ownerToken, formID, "Q1")
	e.publishForm(t, ownerToken, formID)
	return formID, questionID
}

func TestSubmitResponseAnonymousOnPublishedForm(t *testing.T) {
	e := newEnv(t)
	_, aliceToken := e.signup(t, "alice@example.com", "Alice")
	formID, questionID := publishedForm(t, e, aliceToken)

	resp, aerr := e.responses.Submit(dto.SubmitResponseRequest{
		FormID:  formID,
		Answers: []dto.AnswerInput{{QuestionID: questionID, Value: "hello"}},
	})
	require.Nil(t, aerr)
	require.NotEmpty(t, resp.ResponseID)

	got, aerr := e.responses.Get(dto.GetResponseRequest{FormID: formID, ResponseID: resp.ResponseID, Token: aliceToken})
	require.Nil(t, aerr)
	assert.Nil(t, got.Response.UserID)
	require.Len(t, got.Response.Answers, 1)
	assert.Equal(t, "hello", got.Response.Answers[0].Value)
}

func TestSubmitResponseAttributesValidToken(t *testing.T) {
	e := newEnv(t)
	_, aliceToken := e.signup(t, "alice@example.com", "Alice")
	bobID, bobToken := e.signup(t, "bob@example.com", "Bob")
	formID, questionID := publishedForm(t, e, aliceToken)

	resp, aerr := e.responses.Submit(dto.SubmitResponseRequest{
		FormID:  formID,
		Token:   bobToken,
		Answers: []dto.AnswerInput{{QuestionID: questionID, Value: "hi"}},
	})
	require.Nil(t, aerr)

	got, aerr := e.responses.Get(dto.GetResponseRequest{FormID: formID, ResponseID: resp.ResponseID, Token: aliceToken})
	require.Nil(t, aerr)
	require.NotNil(t, got.Response.UserID)
	assert.Equal(t, bobID, *got.Response.UserID)
}

// A broken token on a published form degrades to an anonymous submission
// instead of failing the call.
func TestSubmitResponseSwallowsBadTokenWhenPublished(t *testing.T) {
	e := newEnv(t)
	_, aliceToken := e.signup(t, "alice@example.com", "Alice")
	formID, questionID := publishedForm(t, e, aliceToken)

	resp, aerr := e.responses.Submit(dto.SubmitResponseRequest{
		FormID:  formID,
		Token:   "garbage",
		Answers: []dto.AnswerInput{{QuestionID: questionID, Value: "hi"}},
	})
	require.Nil(t, aerr)

	got, aerr := e.responses.Get(dto.GetResponseRequest{FormID: formID, ResponseID: resp.ResponseID, Token: aliceToken})
	require.Nil(t, aerr)
	assert.Nil(t, got.Response.UserID)
}

func TestSubmitResponseUnpublishedRequiresToken(t *testing.T) {
	e := newEnv(t)
	_, aliceToken := e.signup(t, "alice@example.com", "Alice")
	formID := e.createForm(t, aliceToken, "Draft")
	questionID := e.addQuestion(t, aliceToken, formID, "Q1")
	answers := []dto.AnswerInput{{QuestionID: questionID, Value: "hi"}}

	_, aerr := e.responses.Submit(dto.SubmitResponseRequest{FormID: formID, Answers: answers})
	requireCode(t, aerr, apperr.CodeAuthRequired)

	// Unlike the published case, a broken token is a hard failure here.
	_, aerr = e.responses.Submit(dto.SubmitResponseRequest{FormID: formID, Token: "garbage", Answers: answers})
	requireCode(t, aerr, apperr.CodeAuthFailed)

	_, aerr = e.responses.Submit(dto.SubmitResponseRequest{FormID: formID, Token: aliceToken, Answers: answers})
	require.Nil(t, aerr)
}

func TestSubmitResponseRequiresAnswers(t *testing.T) {
	e := newEnv(t)
	_, aliceToken := e.signup(t, "alice@example.com", "Alice")
	formID, _ := publishedForm(t, e, aliceToken)

	_, aerr := e.responses.Submit(dto.SubmitResponseRequest{FormID: formID})
	requireCode(t, aerr, apperr.CodeMissingFields)
}

func TestUpdateResponseReplacesAnswerSet(t *testing.T) {
	e := newEnv(t)
	_, aliceToken := e.signup(t, "alice@example.com", "Alice")
	formID := e.createForm(t, aliceToken, "Survey")
	q1 := e.addQuestion(t, aliceToken, formID, "Q1")
	q2 := e.addQuestion(t, aliceToken, formID, "Q2")
	q3 := e.addQuestion(t, aliceToken, formID, "Q3")
	e.publishForm(t, aliceToken, formID)

	resp, aerr := e.responses.Submit(dto.SubmitResponseRequest{
		FormID: formID,
		Answers: []dto.AnswerInput{
			{QuestionID: q1, Value: "a"},
			{QuestionID: q2, Value: "b"},
		},
	})
	require.Nil(t, aerr)

	// The new set fully replaces the old one, it is not merged in.
	_, aerr = e.responses.Update(dto.UpdateResponseRequest{
		FormID:     formID,
		ResponseID: resp.ResponseID,
		Token:      aliceToken,
		Answers:    []dto.AnswerInput{{QuestionID: q3, Value: "c"}},
	})
	require.Nil(t, aerr)

	got, aerr := e.responses.Get(dto.GetResponseRequest{FormID: formID, ResponseID: resp.ResponseID, Token: aliceToken})
	require.Nil(t, aerr)
	require.Len(t, got.Response.Answers, 1)
	assert.Equal(t, q3, got.Response.Answers[0].QuestionID)
	assert.Equal(t, "c", got.Response.Answers[0].Value)
}

func TestResponseReadsAreOwnerOnly(t *testing.T) {
	e := newEnv(t)
	_, aliceToken := e.signup(t, "alice@example.com", "Alice")
	_, bobToken := e.signup(t, "bob@example.com", "Bob")
	adminToken := e.seedAdmin(t)
	formID, questionID := publishedForm(t, e, aliceToken)

	resp, aerr := e.responses.Submit(dto.SubmitResponseRequest{
		FormID:  formID,
		Token:   bobToken,
		Answers: []dto.AnswerInput{{QuestionID: questionID, Value: "hi"}},
	})
	require.Nil(t, aerr)

	// Even the respondent cannot read results; only the form owner or admin.
	_, aerr = e.responses.Get(dto.GetResponseRequest{FormID: formID, ResponseID: resp.ResponseID, Token: bobToken})
	requireCode(t, aerr, apperr.CodeAccessDenied)
	_, aerr = e.responses.List(dto.ListResponsesRequest{FormID: formID, Token: bobToken})
	requireCode(t, aerr, apperr.CodeAccessDenied)

	_, aerr = e.responses.Get(dto.GetResponseRequest{FormID: formID, ResponseID: resp.ResponseID, Token: aliceToken})
	require.Nil(t, aerr)
	list, aerr := e.responses.List(dto.ListResponsesRequest{FormID: formID, Token: adminToken})
	require.Nil(t, aerr)
	assert.Len(t, list.Responses, 1)
}

func TestDeleteResponse(t *testing.T) {
	e := newEnv(t)
	_, aliceToken := e.signup(t, "alice@example.com", "Alice")
	_, bobToken := e.signup(t, "bob@example.com", "Bob")
	formID, questionID := publishedForm(t, e, aliceToken)

	resp, aerr := e.responses.Submit(dto.SubmitResponseRequest{
		FormID:  formID,
		Answers: []dto.AnswerInput{{QuestionID: questionID, Value: "hi"}},
	})
	require.Nil(t, aerr)

	_, aerr = e.responses.Delete(dto.DeleteResponseRequest{FormID: formID, ResponseID: resp.ResponseID, Token: bobToken})
	requireCode(t, aerr, apperr.CodeAccessDenied)

	_, aerr = e.responses.Delete(dto.DeleteResponseRequest{FormID: formID, ResponseID: resp.ResponseID, Token: aliceToken})
	require.Nil(t, aerr)

	_, aerr = e.responses.Get(dto.GetResponseRequest{FormID: formID, ResponseID: resp.ResponseID, Token: aliceToken})
	requireCode(t, aerr, apperr.CodeNotFound)
}

func TestResponseScopedToItsForm(t *testing.T) {
	e := newEnv(t)
	_, aliceToken := e.signup(t, "alice@example.com", "Alice")
	formA, questionID := publishedForm(t, e, aliceToken)
	formB := e.createForm(t, aliceToken, "Other Form")

	resp, aerr := e.responses.Submit(dto.SubmitResponseRequest{
		FormID:  formA,
		Answers: []dto.AnswerInput{{QuestionID: questionID, Value: "hi"}},
	})
	require.Nil(t, aerr)

	_, aerr = e.responses.Get(dto.GetResponseRequest{FormID: formB, ResponseID: resp.ResponseID, Token: aliceToken})
	requireCode(t, aerr, apperr.CodeNotFound)
}
