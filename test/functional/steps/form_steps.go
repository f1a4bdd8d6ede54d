package steps

import "fmt"

// Form session step implementations

func (fc *FeatureContext) aFormSessionExistsForCompanyAndPeriod(companyID int, period string) error {
	if err := fc.iCreateANewFormSessionForCompanyAndPeriod(companyID, period); err != nil {
		return err
	}
	fc.require.Equal(201, fc.response.StatusCode, "session creation failed")
	return fc.theResponseShouldContainTheSessionDetails()
}

func (fc *FeatureContext) iCreateANewFormSessionForCompanyAndPeriod(companyID int, period string) error {
	response, err := fc.apiDriver.CreateSession(companyID, period, "input")
	if err != nil {
		return err
	}
	fc.response = response
	fc.companyID = companyID
	fc.reportingPeriod = period
	return nil
}

func (fc *FeatureContext) theResponseShouldContainTheSessionDetails() error {
	var data map[string]any
	err := fc.decodeBody(fc.response.Body, &data)
	fc.require.NoError(err)
	fc.require.NotEmpty(data["id"])
	fc.sessionID = data["id"].(string)
	fc.responseData = data
	return nil
}

func (fc *FeatureContext) iGetTheSessionByItsID() error {
	response, err := fc.apiDriver.GetSession(fc.sessionID)
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

func (fc *FeatureContext) iSetTheFieldTo(field, value string) error {
	response, err := fc.apiDriver.SetValue(fc.sessionID, field, value)
	if err != nil {
		return err
	}
	fc.response = response
	return nil
}

func (fc *FeatureContext) theFieldShouldBeRejectedWithReason(field, reason string) error {
	fc.require.Equal(422, fc.response.StatusCode)

	var data map[string]any
	err := fc.decodeBody(fc.response.Body, &data)
	fc.require.NoError(err)
	fc.require.Equal(field, data["field"])
	fc.require.Equal(false, data["valid"])
	fc.require.Equal(reason, data["reason"])
	return nil
}

func (fc *FeatureContext) iMarkTheFieldAsAKPI(field string) error {
	response, err := fc.apiDriver.SetKPIFlag(fc.sessionID, field, true)
	if err != nil {
		return err
	}
	fc.response = response
	return nil
}

func (fc *FeatureContext) iClearTheFormValues() error {
	response, err := fc.apiDriver.ClearValues(fc.sessionID)
	if err != nil {
		return err
	}
	fc.response = response
	return nil
}

func (fc *FeatureContext) theFormValuesShouldBeEmpty() error {
	values, ok := fc.responseData["values"].(map[string]any)
	fc.require.True(ok, "values should be present")
	fc.require.Empty(values)
	return nil
}

func (fc *FeatureContext) theFormValueShouldBe(field, expected string) error {
	values, ok := fc.responseData["values"].(map[string]any)
	fc.require.True(ok, "values should be present")
	fc.require.Equal(expected, fmt.Sprintf("%v", values[field]))
	return nil
}

func (fc *FeatureContext) iChangeTheSessionContextToPeriod(period string) error {
	response, err := fc.apiDriver.ChangeContext(fc.sessionID, period, "input")
	if err != nil {
		return err
	}
	fc.response = response
	fc.reportingPeriod = period
	return nil
}

func (fc *FeatureContext) iRefreshTheSnapshot(kind string) error {
	response, err := fc.apiDriver.RefreshSnapshot(fc.sessionID, kind)
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

func (fc *FeatureContext) theCurrentSnapshotShouldContainWithValue(field, value string) error {
	current, ok := fc.responseData["current"].(map[string]any)
	fc.require.True(ok, "current snapshot should be present")
	entry, ok := current[field].(map[string]any)
	fc.require.True(ok, "snapshot entry should be present for %s", field)
	fc.require.Equal(value, entry["value"])
	return nil
}

// Submission step implementations

func (fc *FeatureContext) iSubmitTheForm() error {
	response, err := fc.apiDriver.Submit(fc.sessionID)
	if err != nil {
		return err
	}
	fc.response = response

	var data map[string]any
	if err := fc.decodeBody(response.Body, &data); err != nil {
		return err
	}
	fc.responseData = data
	return nil
}

func (fc *FeatureContext) theSubmissionStatusShouldBe(status string) error {
	fc.require.Equal(status, fc.responseData["status"])
	return nil
}

func (fc *FeatureContext) theSubmissionShouldContainRecords(count int) error {
	recordCount, ok := fc.responseData["record_count"].(float64)
	fc.require.True(ok, "record_count should be present")
	fc.require.Equal(count, int(recordCount))
	return nil
}

func (fc *FeatureContext) theSubmissionShouldReportTheFieldWithError(field, message string) error {
	fieldErrors, ok := fc.responseData["field_errors"].(map[string]any)
	fc.require.True(ok, "field_errors should be present")
	fc.require.Equal(message, fieldErrors[field])
	return nil
}
