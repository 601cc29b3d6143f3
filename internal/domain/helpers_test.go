package domain

func seedRecords() []PhraseRecord {
	return []PhraseRecord{
		{Source: "the program and the project", Target: "het programma en het project", Language: "nl"},
		{Source: "walking", Target: "wandelen", Language: "nl"},
		{Source: "thirty-one", Target: "treinta y uno", Language: "es"},
		{Source: "mayor", Target: "sindaco", Language: "it"},
		{Source: "theocracy", Target: "Theokratie", Language: "de"},
		{Source: "the coffee machine", Target: "la machine à café", Language: "fr"},
		{Source: "I won't read all of this to you.", Target: "no te leeré todo esto", Language: "es"},
		{Source: "with an accent", Target: "con acento", Language: "es"},
		{Source: "suddenly", Target: "di colpo", Language: "it"},
		{Source: "Friday", Target: "Venerdì", Language: "it"},
		{Source: "paper towels", Target: "serviettes en papier", Language: "fr"},
		{Source: "so far", Target: "tot nu toe", Language: "nl"},
		{Source: "congratulations", Target: "Gefeliciteerd", Language: "nl"},
		{Source: "to understand", Target: "begrijpen", Language: "nl"},
	}
}

func seedCatalog() Catalog {
	return NewCatalog(
		Language{Code: "nl", Name: "Dutch", Color: "#FF6B6B"},
		Language{Code: "es", Name: "Spanish", Color: "#4ECDC4"},
		Language{Code: "it", Name: "Italian", Color: "#45B7D1"},
		Language{Code: "fr", Name: "French", Color: "#96CEB4"},
		Language{Code: "de", Name: "German", Color: "#FFEAA7"},
	)
}
