package signup

import (
	"context"
	"net/http"
	"strings"

	"github.com/machinebox/graphql"
	apperrors "github.com/snapgram/web/internal/services/web/platform/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/snapgram/web/internal/services/web/modules/signup"

const createAccountMutation = `mutation createAccount(
  $firstName: String!
  $lastName: String
  $username: String!
  $email: String!
  $password: String!
) {
  createAccount(
    firstName: $firstName
    lastName: $lastName
    username: $username
    email: $email
    password: $password
  ) {
    ok
    error
  }
}`

// GraphQLClient runs one GraphQL request. *graphql.Client satisfies it.
type GraphQLClient interface {
	Run(ctx context.Context, req *graphql.Request, resp interface{}) error
}

type createAccountResponse struct {
	CreateAccount struct {
		OK    bool    `json:"ok"`
		Error *string `json:"error"`
	} `json:"createAccount"`
}

// NewGraphQLGateway builds the production account gateway for endpoint. A
// blank endpoint yields a gateway that reports the service as unavailable.
func NewGraphQLGateway(endpoint string, httpClient *http.Client) AccountGateway {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return unavailableGateway{}
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return NewGraphQLGatewayWithClient(graphql.NewClient(endpoint, graphql.WithHTTPClient(httpClient)))
}

// NewGraphQLGatewayWithClient builds the account gateway around client.
func NewGraphQLGatewayWithClient(client GraphQLClient) AccountGateway {
	if client == nil {
		return unavailableGateway{}
	}
	return graphqlGateway{client: client}
}

type graphqlGateway struct {
	client GraphQLClient
}

func (g graphqlGateway) CreateAccount(ctx context.Context, account NewAccount) (Outcome, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "signup.createAccount", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	req := graphql.NewRequest(createAccountMutation)
	req.Var("firstName", account.FirstName)
	if strings.TrimSpace(account.LastName) == "" {
		req.Var("lastName", nil)
	} else {
		req.Var("lastName", account.LastName)
	}
	req.Var("username", account.Username)
	req.Var("email", account.Email)
	req.Var("password", account.Password)
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	var resp createAccountResponse
	if err := g.client.Run(ctx, req, &resp); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "create account failed")
		return Outcome{}, apperrors.Wrap(apperrors.KindUnavailable, MsgUnavailable, "create account", err)
	}

	outcome := Outcome{OK: resp.CreateAccount.OK}
	if resp.CreateAccount.Error != nil {
		outcome.Error = *resp.CreateAccount.Error
	}
	span.SetAttributes(attribute.Bool("signup.ok", outcome.OK))
	return outcome, nil
}
