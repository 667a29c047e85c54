package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/klisis/internal/domain/entities"
)

func TestClassify_RuleTable(t *testing.T) {
	tests := []struct {
		name       string
		nominative string
		genitive   string
		expected   entities.DeclensionClass
	}{
		{name: "η / ης", nominative: "τιμη", genitive: "τιμης", expected: entities.ClassTime},
		{name: "α / ας", nominative: "χωρα", genitive: "χωρας", expected: entities.ClassChora},
		{name: "α / ης", nominative: "μουσα", genitive: "μουσης", expected: entities.ClassMousa},
		{name: "ης / ου", nominative: "κριτης", genitive: "κριτου", expected: entities.ClassKrites},
		{name: "ας / ου", nominative: "νεανιας", genitive: "νεανιου", expected: entities.ClassNeanias},
		{name: "ος / ου", nominative: "λογος", genitive: "λογου", expected: entities.ClassLogos},
		{name: "ον / ου", nominative: "δωρον", genitive: "δωρου", expected: entities.ClassDoron},
		{name: "οι / ων plural", nominative: "λογοι", genitive: "λογων", expected: entities.ClassLogos},
		{name: "ων / οντος", nominative: "γερων", genitive: "γεροντος", expected: entities.ClassGeron},
		{name: "ας / αντος", nominative: "γιγας", genitive: "γιγαντος", expected: entities.ClassGigas},
		{name: "α / ατος", nominative: "σωμα", genitive: "σωματος", expected: entities.ClassSoma},
		{name: "τα / ατων plural", nominative: "σωματα", genitive: "σωματων", expected: entities.ClassSoma},
		{name: "α / ων", nominative: "δωρα", genitive: "δωρων", expected: entities.ClassDoron},
		{name: "ος / ους", nominative: "γενος", genitive: "γενους", expected: entities.ClassGenos},
		{name: "ευς / εως", nominative: "βασιλευς", genitive: "βασιλεως", expected: entities.ClassBasileus},
		{name: "ις / εως", nominative: "πολις", genitive: "πολεως", expected: entities.ClassPolis},
		{name: "υς / υος", nominative: "ιχθυς", genitive: "ιχθυος", expected: entities.ClassIchthus},
		{name: "any / νος", nominative: "χειμων", genitive: "χειμωνος", expected: entities.ClassCheimon},
		{name: "any / ος", nominative: "φυλαξ", genitive: "φυλακος", expected: entities.ClassPhulax},
		{name: "surrounding space", nominative: " λογος ", genitive: "λογου ", expected: entities.ClassLogos},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Classify(tt.nominative, tt.genitive)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestClassify_OrderMatters(t *testing.T) {
	// -νος also ends in -ος: the nasal rule must win
	got, err := Classify("ποιμην", "ποιμενος")
	require.NoError(t, err)
	assert.Equal(t, entities.ClassCheimon, got)

	// -οντος ends in -ος too, but the ων rule comes first
	got, err = Classify("λεων", "λεοντος")
	require.NoError(t, err)
	assert.Equal(t, entities.ClassGeron, got)

	// σωματα/σωματων satisfies both the ατων rule and the later α/ων rule
	got, err = Classify("σωματα", "σωματων")
	require.NoError(t, err)
	assert.Equal(t, entities.ClassSoma, got)

	// Nominative is unconstrained by the fallback rules
	got, err = Classify("ελπις", "ελπιδος")
	require.NoError(t, err)
	assert.Equal(t, entities.ClassPhulax, got)
}

func TestClassify_Unrecognized(t *testing.T) {
	tests := []struct {
		nominative string
		genitive   string
	}{
		{nominative: "χωρα", genitive: "χωρου"},
		{nominative: "abc", genitive: "def"},
		{nominative: "", genitive: ""},
		{nominative: "λογος", genitive: "λογοι"},
	}

	for _, tt := range tests {
		t.Run(tt.nominative+"/"+tt.genitive, func(t *testing.T) {
			_, err := Classify(tt.nominative, tt.genitive)
			require.Error(t, err)
			assert.True(t, errors.Is(err, entities.ErrUnrecognizedPattern))

			var patternErr *entities.PatternError
			require.True(t, errors.As(err, &patternErr))
			assert.Equal(t, tt.nominative, patternErr.Nominative)
			assert.Equal(t, tt.genitive, patternErr.Genitive)
		})
	}
}

func TestClassificationRules_EveryClassReachable(t *testing.T) {
	seen := make(map[entities.DeclensionClass]bool)
	for _, rule := range classificationRules {
		require.True(t, rule.class.IsValid(), "rule targets unknown class %q", rule.class)
		seen[rule.class] = true
	}
	for _, c := range entities.AllClasses {
		assert.True(t, seen[c], "class %s has no rule", c)
	}
	assert.Len(t, classificationRules, 19)
}
