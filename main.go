package main

import (
	"fmt"
	"log"

	"github.com/dlund/go-afinn/afinn"
)

func main() {
	// --- Examples -------
	scorer, err := afinn.New()
	if err != nil {
		log.Fatal(err)
	}

	sentences := []string{
		"This is utterly excellent!",             // single positive word
		"This is oh so bad.",                     // single negative word
		"The movie was not good.",                // multi-word lexicon phrase
		"Never bad, always wonderful.",           // negation flips the sign
		"The plot was good but the dialog fails", // mixed contributions sum
		"Nothing matched here.",                  // unmatched text scores zero
	}

	for _, sentence := range sentences {
		fmt.Printf("%-45s : %+.1f\n", sentence, scorer.Score(sentence))
	}

	fmt.Println("----------------------------------------------------")

	// emoticons are scored from the raw text, independent of negation
	smiley, err := afinn.New(afinn.Emoticons(true))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%-45s : %+.1f\n", "I saw that yesterday :)", smiley.Score("I saw that yesterday :)"))

	fmt.Println("----------------------------------------------------")

	// a shared cache lets many scorers reuse one parsed lexicon
	cache := afinn.NewCache()
	samples := map[string]string{
		"en": "What a wonderful day.",
		"da": "Det er bare vidunderlig!!!",
		"fi": "Tämä on erinomainen idea.",
		"sv": "Det var en utmärkt film.",
		"tr": "Bu harika bir fikir.",
	}
	for _, language := range afinn.Languages() {
		s, err := afinn.New(afinn.Language(language), afinn.WithCache(cache))
		if err != nil {
			log.Fatal(err)
		}
		sample := samples[language]
		fmt.Printf("%s  %-30s : %+.1f\n", language, sample, s.Score(sample))
	}

	fmt.Println("----------------------------------------------------")

	// FindAll exposes the raw matches behind a score
	for _, match := range scorer.FindAll("The plot was good but the dialog fails") {
		fmt.Printf("matched %-12q : %+.1f\n", match.Term, match.Weight)
	}
}
