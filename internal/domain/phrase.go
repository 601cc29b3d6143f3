package domain

// AllLanguages is the filter value that matches every record.
const AllLanguages = "all"

// PhraseRecord is one learned phrase: the text in the learner's base language
// and its translation into a target language.
type PhraseRecord struct {
	Source   string `yaml:"source" json:"source"`
	Target   string `yaml:"target" json:"target"`
	Language string `yaml:"language" json:"language"`
}
