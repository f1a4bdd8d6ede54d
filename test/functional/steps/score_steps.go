package steps

// Score endpoint step implementations

func (fc *FeatureContext) iRunTheScoreForTheCompany() error {
	response, err := fc.apiDriver.RunScore(fc.companyID, fc.reportingPeriod)
	if err != nil {
		return err
	}
	fc.response = response
	if response.StatusCode == 200 {
		var data map[string]any
		if err := fc.decodeBody(response.Body, &data); err != nil {
			return err
		}
		fc.responseData = data
	}
	return nil
}

func (fc *FeatureContext) theScoreReportShouldContainThePillarWithScore(pillar string, score int) error {
	pillarScores, ok := fc.responseData["pillar_scores"].(map[string]any)
	fc.require.True(ok, "pillar_scores should be present")

	value, ok := pillarScores[pillar].(float64)
	fc.require.True(ok, "pillar %s should be present", pillar)
	fc.require.Equal(float64(score), value)
	return nil
}
