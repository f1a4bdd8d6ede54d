package steps

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"esg-server/test/functional/driver"

	"github.com/cucumber/godog"
	"github.com/stretchr/testify/require"
)

type FeatureContext struct {
	apiDriver       *driver.APIDriver
	response        *http.Response
	responseData    map[string]any
	sessionID       string
	companyID       int
	reportingPeriod string
	require         *require.Assertions
	t               godog.TestingT
}

func NewFeatureContext() *FeatureContext {
	return &FeatureContext{
		apiDriver: driver.NewAPIDriver("http://localhost:3000"),
	}
}

func (fc *FeatureContext) RegisterSteps(ctx *godog.ScenarioContext) {
	// Generic steps
	ctx.Step(`^wait for (.*)$`, fc.waitForDuration)
	ctx.Then(`^the response status code should be (\d+)$`, fc.theResponseStatusCodeShouldBe)

	// Session steps
	ctx.Given(`^a form session exists for company (\d+) and period "([^"]*)"$`, fc.aFormSessionExistsForCompanyAndPeriod)
	ctx.When(`^I create a new form session for company (\d+) and period "([^"]*)"$`, fc.iCreateANewFormSessionForCompanyAndPeriod)
	ctx.Then(`^the response should contain the session details$`, fc.theResponseShouldContainTheSessionDetails)
	ctx.When(`^I get the session by its ID$`, fc.iGetTheSessionByItsID)
	ctx.When(`^I set the field "([^"]*)" to "([^"]*)"$`, fc.iSetTheFieldTo)
	ctx.Then(`^the field "([^"]*)" should be rejected with reason "([^"]*)"$`, fc.theFieldShouldBeRejectedWithReason)
	ctx.When(`^I mark the field "([^"]*)" as a KPI$`, fc.iMarkTheFieldAsAKPI)
	ctx.When(`^I clear the form values$`, fc.iClearTheFormValues)
	ctx.Then(`^the form values should be empty$`, fc.theFormValuesShouldBeEmpty)
	ctx.Then(`^the form value "([^"]*)" should be "([^"]*)"$`, fc.theFormValueShouldBe)
	ctx.When(`^I change the session context to period "([^"]*)"$`, fc.iChangeTheSessionContextToPeriod)
	ctx.When(`^I refresh the "([^"]*)" snapshot$`, fc.iRefreshTheSnapshot)
	ctx.Then(`^the current snapshot should contain "([^"]*)" with value "([^"]*)"$`, fc.theCurrentSnapshotShouldContainWithValue)

	// Submission steps
	ctx.When(`^I submit the form$`, fc.iSubmitTheForm)
	ctx.Then(`^the submission status should be "([^"]*)"$`, fc.theSubmissionStatusShouldBe)
	ctx.Then(`^the submission should contain (\d+) records?$`, fc.theSubmissionShouldContainRecords)
	ctx.Then(`^the submission should report the field "([^"]*)" with error "([^"]*)"$`, fc.theSubmissionShouldReportTheFieldWithError)

	// Schema steps
	ctx.When(`^I request the grouped schema for method "([^"]*)"$`, fc.iRequestTheGroupedSchemaForMethod)
	ctx.Then(`^the schema should contain the category "([^"]*)"$`, fc.theSchemaShouldContainTheCategory)

	// Score steps
	ctx.When(`^I run the score for the company$`, fc.iRunTheScoreForTheCompany)
	ctx.Then(`^the score report should contain the pillar "([^"]*)" with score (\d+)$`, fc.theScoreReportShouldContainThePillarWithScore)

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		fc.t = godog.T(ctx)
		fc.require = require.New(fc.t)

		fc.reset()
		return ctx, nil
	})
}

func (fc *FeatureContext) reset() {
	fc.response = nil
	fc.responseData = nil
	fc.sessionID = ""
	fc.companyID = 0
	fc.reportingPeriod = ""
}

func (fc *FeatureContext) decodeBody(body io.ReadCloser, target any) error {
	return json.NewDecoder(body).Decode(target)
}
