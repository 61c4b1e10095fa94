/*
Package cardcost manages per-country clearing costs and resolves the cost
that applies to a payment card.

Clearing costs are kept in a ClearingCostRepository keyed by ISO alpha-2
country code. A card's cost is found by resolving its issuing country through
a binlist.Resolver and reading the stored cost for that country; countries
without a stored cost are charged models.DefaultClearingCost.

Usage:

	svc := cardcost.NewService(repo, binlist.NewClient(cfg.Binlist.BaseURL, nil))

	err := svc.CreateClearingCost(ctx, models.ClearingCostInput{CountryCode: "US", Cost: &cost})

	resp, err := svc.GetCardCost(ctx, &cardNumber)

Error Handling:

Every expected failure is an *errors.DomainError from cardcost/internal/errors:
  - INVALID_ARGUMENT: input failed validation; no I/O was performed
  - NOT_FOUND: no stored record, or the BIN service knows no country for the card
  - CONFLICT: a record already exists for the country code
  - RATE_LIMITED: the BIN service throttled the lookup
  - UPSTREAM_ERROR: the BIN service rejected the request or could not be reached

Other errors come from the store and are wrapped with the failing operation.
The service keeps no state between calls and never retries.
*/
package cardcost
