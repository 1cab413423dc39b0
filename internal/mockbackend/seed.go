package mockbackend

import "github.com/tahaburak/would-watch/internal/model"

func strPtr(s string) *string { return &s }

// seedMovies is a small fixed catalogue so the dev loop has something
// to swipe on without a media provider key.
func seedMovies() []model.Movie {
	return []model.Movie{
		{
			ID:          19995,
			Title:       "Avatar",
			Overview:    "A paraplegic Marine dispatched to the moon Pandora on a unique mission.",
			PosterPath:  strPtr("/kyeqWdyUXW608qlYkRqosgbbJyK.jpg"),
			ReleaseDate: "2009-12-18",
			VoteAverage: 7.6,
			VoteCount:   32112,
		},
		{
			ID:          27205,
			Title:       "Inception",
			Overview:    "A thief who steals corporate secrets through dream-sharing technology.",
			PosterPath:  strPtr("/oYuLEt3zVCKq57qu2F8dT7NIa6f.jpg"),
			ReleaseDate: "2010-07-16",
			VoteAverage: 8.4,
			VoteCount:   36597,
		},
		{
			ID:          157336,
			Title:       "Interstellar",
			Overview:    "A team of explorers travel through a wormhole in space.",
			PosterPath:  strPtr("/gEU2QniE6E77NI6lCU6MxlNBvIx.jpg"),
			ReleaseDate: "2014-11-07",
			VoteAverage: 8.4,
			VoteCount:   35862,
		},
		{
			ID:          603,
			Title:       "The Matrix",
			Overview:    "A computer hacker learns about the true nature of his reality.",
			PosterPath:  strPtr("/f89U3ADr1oiB1s9GkdPOEpXUk5H.jpg"),
			ReleaseDate: "1999-03-31",
			VoteAverage: 8.2,
			VoteCount:   25861,
		},
		{
			ID:          680,
			Title:       "Pulp Fiction",
			Overview:    "A burger-loving hit man, his philosophical partner, and a washed-up boxer.",
			PosterPath:  strPtr("/d5iIlFn5s0ImszYzBPb8JPIfbXD.jpg"),
			ReleaseDate: "1994-09-10",
			VoteAverage: 8.5,
			VoteCount:   28019,
		},
		{
			ID:          155,
			Title:       "The Dark Knight",
			Overview:    "Batman raises the stakes in his war on crime.",
			PosterPath:  strPtr("/qJ2tW6WMUDux911r6m7haRef0WH.jpg"),
			ReleaseDate: "2008-07-18",
			VoteAverage: 8.5,
			VoteCount:   33297,
		},
		{
			ID:          429617,
			Title:       "Spider-Man: Far From Home",
			Overview:    "Peter Parker and his friends go on a summer trip to Europe.",
			PosterPath:  strPtr("/4q2NNj4S5dG2RLF9CpXsej7yXl.jpg"),
			ReleaseDate: "2019-07-02",
			VoteAverage: 7.4,
			VoteCount:   14356,
		},
		{
			ID:          496243,
			Title:       "Parasite",
			Overview:    "All unemployed, Ki-taek's family takes peculiar interest in the wealthy Parks.",
			PosterPath:  strPtr("/7IiTTgloJzvGI1TAYymCfbfl3vT.jpg"),
			ReleaseDate: "2019-05-30",
			VoteAverage: 8.5,
			VoteCount:   18648,
		},
	}
}
