package installer

// Search keys are all optional. Google News needs none and is always the last
// fallback.
func newSearchKeySteps() []Step {
	return []Step{
		newInputStep("your NewsAPI key (newsapi.org)", "optional", func(state *InstallState, val string) error {
			state.Search.NewsAPIKey = val
			return nil
		}, secret(), optional()),
		newInputStep("your Newsdata key (newsdata.io)", "optional", func(state *InstallState, val string) error {
			state.Search.NewsdataAPIKey = val
			return nil
		}, secret(), optional()),
		newInputStep("your GNews key (gnews.io)", "optional", func(state *InstallState, val string) error {
			state.Search.GNewsAPIKey = val
			return nil
		}, secret(), optional()),
		newInputStep("your Tavily key (tavily.com)", "optional", func(state *InstallState, val string) error {
			state.Search.TavilyAPIKey = val
			return nil
		}, secret(), optional()),
	}
}
