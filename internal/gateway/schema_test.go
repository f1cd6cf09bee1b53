package gateway

import "testing"

func TestValidateBody_Question(t *testing.T) {
	valid := []byte(`{"id":3,"role":"Frontend Developer","questionText":"What is the virtual DOM?","difficulty":"MEDIUM"}`)
	if err := validateBody(questionSchema, valid); err != nil {
		t.Fatalf("valid question rejected: %v", err)
	}

	invalid := [][]byte{
		[]byte(`{}`),
		[]byte(`[]`),
		[]byte(`{"id":3,"role":"x","questionText":"y","difficulty":"IMPOSSIBLE"}`),
		[]byte(`{"id":3.5,"role":"x","questionText":"y","difficulty":"EASY"}`),
	}
	for _, body := range invalid {
		if err := validateBody(questionSchema, body); err == nil {
			t.Errorf("expected rejection for %s", body)
		}
	}
}

func TestValidateBody_Feedback(t *testing.T) {
	valid := []byte(`{"id":1,"score":8.5,"strengths":"a","areasForImprovement":"b","overallComments":"c"}`)
	if err := validateBody(feedbackSchema, valid); err != nil {
		t.Fatalf("valid feedback rejected: %v", err)
	}

	// Out-of-range scores are advisory, not a decode failure.
	outOfRange := []byte(`{"id":1,"score":14,"strengths":"a","areasForImprovement":"b","overallComments":"c"}`)
	if err := validateBody(feedbackSchema, outOfRange); err != nil {
		t.Fatalf("out-of-range score should still decode: %v", err)
	}

	missingScore := []byte(`{"id":1,"strengths":"a","areasForImprovement":"b","overallComments":"c"}`)
	if err := validateBody(feedbackSchema, missingScore); err == nil {
		t.Error("expected rejection when score is missing")
	}
}

func TestCompiledSchemaCaching(t *testing.T) {
	first, err := compiledSchema(questionSchema)
	if err != nil {
		t.Fatal(err)
	}
	second, err := compiledSchema(questionSchema)
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Error("expected the compiled schema to be cached")
	}
}
