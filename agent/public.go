package agent

import (
	"context"
	"fmt"
	"slices"

	"github.com/etnz/assetbloc"
	"github.com/etnz/assetbloc/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user is here primarily to understand his fractional ownership positions: which assets
			exist, what he holds, what rent he earned, and what the assets are worth on the market.

			Devise a plan of questions to ask each expert and come up with the best response to the user's request.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewSurveyor creates the market research expert.
func NewSurveyor() *Expert {
	return &Expert{
		Name: "Surveyor",
		Description: `This is an expert real-estate surveyor,
		very well aware of property markets, locations and valuations,
		and of the latest news about them.
		Ask the Surveyor whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert in real-estate markets, you can search and find about anything related to
			properties, locations, valuations and rental markets. You leverage Google Search to
			ground your assertions in a solid truth.
			You can get the latest news too, and you know how to relate them to the user's request.
				`}}},
		},
	}
}

// NewRegistrar creates the ledger expert. It reads the user's ledger through
// the given loader.
func NewRegistrar(load func() (*assetbloc.Ledger, error)) *Expert {

	lib := []Function{assetsFunc(load), statementFunc(load), ownersFunc(load)}

	return &Expert{
		Name: "Registrar",
		Description: `This is the Registrar. He is in charge of reading the user's asset ledger.
		He can list the registered assets, report an account's cash and holdings, and list
		the shareholders of an asset.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are the registrar in charge of the user's asset ledger.
				You know how to use the Tools to extract relevant information about the ledger:
				  - list of registered assets
				  - account statements (cash and holdings)
				  - shareholders of an asset
				You are part of a team of experts, yours is everything recorded in the ledger. They might
				ask you questions in approximative language, figure out what they meant.
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements a simple Function
type Func struct {
	// Declare this function
	Decl *genai.FunctionDeclaration
	// Call this function
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

// failure builds the error response for a function call.
func failure(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"error": err.Error(),
		},
	}
}

// success builds the output response for a function call.
func success(id, name, output string) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"output": output,
		},
	}
}

func assetsFunc(load func() (*assetbloc.Ledger, error)) Function {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "Assets",
			Description: `Assets lists all registered assets with their id, name, location, value, rent and occupant.`,
			Parameters: &genai.Schema{
				Type:       genai.TypeObject,
				Properties: map[string]*genai.Schema{},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted table of all registered assets.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			ledger, err := load()
			if err != nil {
				return failure(id, "Assets", err)
			}
			return success(id, "Assets", renderer.Assets(slices.Collect(ledger.Assets())))
		},
	}
}

func statementFunc(load func() (*assetbloc.Ledger, error)) Function {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "Statement",
			Description: `Statement reports an account's cash balance and shareholdings.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"account": {
						Type:        genai.TypeString,
						Description: "The identity of the account to report on.",
					},
				},
				Required: []string{"account"},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted account statement.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			account, ok := args["account"].(string)
			if !ok {
				return failure(id, "Statement", fmt.Errorf("argument 'account' is not a string but %T", args["account"]))
			}
			ledger, err := load()
			if err != nil {
				return failure(id, "Statement", err)
			}
			statement, err := ledger.Statement(account)
			if err != nil {
				return failure(id, "Statement", err)
			}
			return success(id, "Statement", renderer.Statement(statement))
		},
	}
}

func ownersFunc(load func() (*assetbloc.Ledger, error)) Function {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "Owners",
			Description: `Owners lists the shareholders of an asset with their share counts.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"asset": {
						Type:        genai.TypeNumber,
						Description: "The id of the asset.",
					},
				},
				Required: []string{"asset"},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted table of the asset's shareholders.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			asset, ok := args["asset"].(float64)
			if !ok {
				return failure(id, "Owners", fmt.Errorf("argument 'asset' is not a number but %T", args["asset"]))
			}
			ledger, err := load()
			if err != nil {
				return failure(id, "Owners", err)
			}
			owners, err := ledger.AssetOwners(int64(asset))
			if err != nil {
				return failure(id, "Owners", err)
			}
			return success(id, "Owners", renderer.Owners(owners))
		},
	}
}
