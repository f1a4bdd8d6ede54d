package steps

// Schema endpoint step implementations

func (fc *FeatureContext) iRequestTheGroupedSchemaForMethod(method string) error {
	response, err := fc.apiDriver.GetSchema(method)
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

func (fc *FeatureContext) theSchemaShouldContainTheCategory(name string) error {
	categories, ok := fc.responseData["categories"].([]any)
	fc.require.True(ok, "categories should be present")

	for _, item := range categories {
		category, ok := item.(map[string]any)
		fc.require.True(ok)
		if category["name"] == name {
			return nil
		}
	}
	fc.require.Failf("category not found", "schema does not contain category %s", name)
	return nil
}
