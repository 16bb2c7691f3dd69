package nlrb

// the nlrb scraper is read-only and stateless, every method depends solely on its input
// and the pages the site returns. the only shared state is the resty session held by
// the Client, which carries cookies between requests.

// each scraping method generally has this structure:
// 1. input -> url (CaseListUrl, CaseUrl)
// 2. url -> body (Client.Fetch, which also enforces the inter-request delay)
// 3. body -> output (PageCount, ParseCaseList, ParseCase)

// step 3 is kept free of any network access so it can be tested against the
// fixtures in testdata/. the Get* methods on Client combine the three steps and
// GetCaseList drives pagination across listing pages.
