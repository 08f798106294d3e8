// Package shopquery provides an embedded Go client for the shopquery
// product search engine: typo-tolerant query interpretation, semantic
// attribute extraction, constraint filtering, personalized ranking, and
// autocomplete suggestions over the built-in catalog.
//
// The client runs fully in-process. A Redis connection is optional and
// only enables the search analytics report:
//
//	client, _ := shopquery.New(ctx)
//	defer client.Close()
//
//	results, _ := client.Search(ctx, "runni shoes under 150", nil, shopquery.Filters{})
//	suggestions, _ := client.Suggest(ctx, "lip", nil)
//
// With analytics:
//
//	client, _ := shopquery.New(ctx, shopquery.WithRedis("localhost:6379", ""))
//	report, _ := client.Analytics(ctx)
//
// Personalization activates when a returning user is supplied:
//
//	user := &shopquery.User{
//	    ID:          1,
//	    IsReturning: true,
//	    Preferences: shopquery.Preferences{Brands: []string{"Nike"}},
//	}
//	results, _ := client.Search(ctx, "shoes", user, shopquery.Filters{})
package shopquery
