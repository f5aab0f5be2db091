// Package e2e provides end-to-end tests over the full stack: corpus source,
// enrichment pipeline, indices, and the HTTP API.
package e2e

// CorpusReview is one review entry in the E2E corpus.
type CorpusReview struct {
	Movie  string
	Text   string
	Actors []string
}

// QueryTestCase defines a search query and the review ID(s) that must appear
// in the results. IDs are positional: the review's index in Corpus.Reviews.
type QueryTestCase struct {
	Query       string
	ExpectedIDs []int
	Description string
}

// Corpus holds reviews and query test cases for E2E tests.
type Corpus struct {
	Reviews      []CorpusReview
	TestCases    []QueryTestCase
	TotalReviews int
	TotalQueries int
}

// BuildCorpus returns a corpus of reviews with varied movies, languages, and
// actors. Each review carries a unique "signature" phrase so queries can
// assert the correct review is returned; search is token-membership, so a
// signature query must hit exactly the reviews that contain all its words.
func BuildCorpus() *Corpus {
	seeds := []struct {
		movie  string
		phrase string
		text   string
		actors []string
	}{
		{"Nope", "gigantic saucer silhouette",
			"A gigantic saucer silhouette hangs over the ranch for most of the runtime. Daniel Kaluuya anchors every frame with quiet intensity.",
			[]string{"Daniel Kaluuya"}},
		{"Nope", "horseback chase climax",
			"The horseback chase climax is breathtaking. Keke Palmer brings wonderful energy to every scene she is in.",
			nil},
		{"Roma", "azotea lavando ropa",
			"La escena en la azotea lavando ropa mientras los niños juegan abajo es pura poesía visual. Yalitza Aparicio está maravillosa en cada momento de la película.",
			[]string{"Yalitza Aparicio"}},
		{"Roma", "monochrome cinematography glows",
			"The monochrome cinematography glows in every composition. A patient, personal film that rewards close attention.",
			nil},
		{"Parasite", "basement bunker twist",
			"The basement bunker twist reframes everything that came before it. Song Kang-ho is magnetic as the father.",
			[]string{"Song Kang-ho"}},
		{"Parasite", "peach fuzz scheme",
			"The peach fuzz scheme against the housekeeper is diabolically clever. Class tension sharpened into farce.",
			nil},
		{"Dune", "sandworm summoning thumper",
			"The sandworm summoning thumper sequence rumbles through the theater. Timothée Chalamet carries the weight of the role.",
			[]string{"Timothée Chalamet"}},
		{"Dune", "spice harvester rescue",
			"The spice harvester rescue shows the scale of Arrakis before a sandworm swallows the machine whole.",
			nil},
		{"Arrival", "heptapod ink circles",
			"The heptapod ink circles are the most alien written language ever put on screen. Amy Adams grounds the film in grief.",
			[]string{"Amy Adams"}},
		{"Arrival", "nonlinear memory structure",
			"Its nonlinear memory structure only fully lands on a second viewing. Quietly devastating science fiction.",
			nil},
		{"Whiplash", "rushing dragging tempo",
			"The rushing dragging tempo interrogation scene is pure terror. J.K. Simmons is volcanic as the conductor.",
			[]string{"J.K. Simmons"}},
		{"Coco", "ofrenda llena fotografias",
			"La ofrenda llena de fotografias antiguas me hizo llorar sin remedio. Una carta de amor preciosa a las tradiciones mexicanas y a la memoria familiar.",
			nil},
		{"El Laberinto del Fauno", "mandragora bajo cama",
			"La mandragora escondida bajo la cama retorciéndose en la leche es una imagen imposible de olvidar. Ivana Baquero sostiene toda la película con una madurez asombrosa.",
			[]string{"Ivana Baquero"}},
		{"Amores Perros", "choque coches brutal",
			"El choque de coches brutal que abre la película conecta tres historias con una energía feroz. El mejor cine mexicano de su década.",
			nil},
		{"The Lighthouse", "kerosene soaked delirium",
			"Two men descend into kerosene soaked delirium on a rock in the sea. Willem Dafoe delivers his monologues like weather.",
			[]string{"Willem Dafoe"}},
		{"The Lighthouse", "mermaid foghorn visions",
			"The mermaid foghorn visions blur until neither keeper can trust his own log. Shot in suffocating squarish black and white.",
			nil},
	}

	reviews := make([]CorpusReview, len(seeds))
	cases := make([]QueryTestCase, 0, len(seeds)+1)
	for i, s := range seeds {
		reviews[i] = CorpusReview{Movie: s.movie, Text: s.text, Actors: s.actors}
		cases = append(cases, QueryTestCase{
			Query:       s.phrase,
			ExpectedIDs: []int{i},
			Description: s.movie + " signature phrase",
		})
	}
	// "sandworm" appears in both Dune reviews.
	cases = append(cases, QueryTestCase{
		Query:       "sandworm",
		ExpectedIDs: []int{6, 7},
		Description: "shared token across reviews",
	})

	return &Corpus{
		Reviews:      reviews,
		TestCases:    cases,
		TotalReviews: len(reviews),
		TotalQueries: len(cases),
	}
}
