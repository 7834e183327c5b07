package router

import (
	"fmt"
	"net/http"
)

func registerSwaggerRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/swagger", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/swagger/", http.StatusMovedPermanently)
	})

	mux.HandleFunc("/swagger/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = fmt.Fprintf(w, swaggerHTML, "/swagger/openapi.json")
	})

	mux.HandleFunc("/swagger/openapi.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(openAPI))
	})
}

const swaggerHTML = `<!doctype html>
<html>
<head>
  <meta charset="utf-8" />
  <title>Branch Ledger API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.onload = function() {
      window.ui = SwaggerUIBundle({
        url: "%s",
        dom_id: "#swagger-ui"
      });
    };
  </script>
</body>
</html>`

const openAPI = `{
  "openapi": "3.0.3",
  "info": {
    "title": "Branch Ledger API",
    "version": "1.0.0"
  },
  "security": [
    {
      "BasicAuth": []
    }
  ],
  "paths": {
    "/clients": {
      "post": {
        "summary": "Register client",
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": {"$ref": "#/components/schemas/RegisterClientRequest"}
            }
          }
        },
        "responses": {
          "201": {"description": "Client registered"},
          "400": {"description": "Validation error"},
          "401": {"description": "Unauthorized"},
          "409": {"description": "Client already registered"},
          "500": {"description": "Server error"}
        }
      },
      "get": {
        "summary": "Search client by CPF",
        "parameters": [
          {"name": "cpf", "in": "query", "required": true, "schema": {"type": "string"}}
        ],
        "responses": {
          "200": {"description": "Client fetched"},
          "400": {"description": "Validation error"},
          "401": {"description": "Unauthorized"},
          "404": {"description": "Client not found"}
        }
      }
    },
    "/accounts": {
      "post": {
        "summary": "Open the next account of the agency for a registered client",
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "required": ["cpf"],
                "properties": {
                  "cpf": {"type": "string"}
                }
              }
            }
          }
        },
        "responses": {
          "201": {"description": "Account created"},
          "400": {"description": "Validation error"},
          "401": {"description": "Unauthorized"},
          "404": {"description": "Client not found"}
        }
      },
      "get": {
        "summary": "List every account of the bank",
        "responses": {
          "200": {"description": "Accounts fetched"},
          "401": {"description": "Unauthorized"}
        }
      }
    },
    "/accounts/detail": {
      "get": {
        "summary": "Get account summary",
        "parameters": [
          {"$ref": "#/components/parameters/AccountNumber"},
          {"$ref": "#/components/parameters/AgencyNumber"}
        ],
        "responses": {
          "200": {"description": "Account fetched"},
          "400": {"description": "Validation error"},
          "404": {"description": "Account not found"}
        }
      }
    },
    "/accounts/sign-in": {
      "post": {
        "summary": "Sign in with CPF and account, optionally with PIN",
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "required": ["cpf", "accountNumber"],
                "properties": {
                  "cpf": {"type": "string"},
                  "accountNumber": {"type": "string", "pattern": "^[0-9]{1,8}$"},
                  "agencyNumber": {"type": "string", "pattern": "^[0-9]{1,4}$"},
                  "pin": {"type": "string"}
                }
              }
            }
          }
        },
        "responses": {
          "200": {"description": "Signed in"},
          "400": {"description": "Validation error"},
          "401": {"description": "Invalid PIN or credentials"},
          "404": {"description": "Account not found for client"}
        }
      }
    },
    "/accounts/statement": {
      "get": {
        "summary": "Replay the account history into a statement",
        "parameters": [
          {"$ref": "#/components/parameters/AccountNumber"},
          {"$ref": "#/components/parameters/AgencyNumber"}
        ],
        "responses": {
          "200": {"description": "Statement generated"},
          "404": {"description": "Account not found"}
        }
      }
    },
    "/accounts/transactions": {
      "get": {
        "summary": "List account transactions, optionally by type",
        "parameters": [
          {"$ref": "#/components/parameters/AccountNumber"},
          {"$ref": "#/components/parameters/AgencyNumber"},
          {"name": "type", "in": "query", "required": false, "schema": {"type": "string", "enum": ["deposit", "withdraw", "transfer"]}}
        ],
        "responses": {
          "200": {"description": "Transactions fetched"},
          "400": {"description": "Validation error"},
          "404": {"description": "Account not found"}
        }
      }
    },
    "/deposits": {
      "post": {
        "summary": "Deposit into an account",
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": {"$ref": "#/components/schemas/LedgerRequest"}
            }
          }
        },
        "responses": {
          "201": {"description": "Deposit completed"},
          "400": {"description": "Validation error"},
          "404": {"description": "Account not found"},
          "422": {"description": "Daily transaction limit reached"}
        }
      }
    },
    "/withdrawals": {
      "post": {
        "summary": "Withdraw from an account",
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": {"$ref": "#/components/schemas/LedgerRequest"}
            }
          }
        },
        "responses": {
          "201": {"description": "Withdrawal completed"},
          "400": {"description": "Validation error"},
          "404": {"description": "Account not found"},
          "422": {"description": "Insufficient funds or withdrawal limits reached"}
        }
      }
    },
    "/transfers": {
      "post": {
        "summary": "Transfer between two accounts",
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "required": ["sourceAccountNumber", "destinationAccountNumber", "amount"],
                "properties": {
                  "sourceAccountNumber": {"type": "string"},
                  "sourceAgencyNumber": {"type": "string"},
                  "destinationAccountNumber": {"type": "string"},
                  "destinationAgencyNumber": {"type": "string"},
                  "amount": {"type": "string", "example": "100.00"}
                }
              }
            }
          }
        },
        "responses": {
          "201": {"description": "Transfer completed"},
          "400": {"description": "Validation error"},
          "404": {"description": "Account not found"},
          "422": {"description": "Insufficient funds, same account or daily limit"}
        }
      }
    },
    "/health": {
      "get": {
        "summary": "Liveness probe",
        "security": [],
        "responses": {
          "200": {"description": "Service up"}
        }
      }
    }
  },
  "components": {
    "securitySchemes": {
      "BasicAuth": {
        "type": "http",
        "scheme": "basic"
      }
    },
    "parameters": {
      "AccountNumber": {"name": "accountNumber", "in": "query", "required": true, "schema": {"type": "string", "pattern": "^[0-9]{1,8}$"}},
      "AgencyNumber": {"name": "agencyNumber", "in": "query", "required": false, "schema": {"type": "string", "pattern": "^[0-9]{1,4}$"}}
    },
    "schemas": {
      "RegisterClientRequest": {
        "type": "object",
        "required": ["name", "cpf", "dateOfBirth", "address"],
        "properties": {
          "name": {"type": "string"},
          "cpf": {"type": "string", "example": "529.982.247-25"},
          "dateOfBirth": {"type": "string", "example": "31/12/1990"},
          "address": {
            "type": "object",
            "properties": {
              "street": {"type": "string"},
              "number": {"type": "string"},
              "district": {"type": "string"},
              "city": {"type": "string"},
              "state": {"type": "string", "example": "SP"}
            }
          },
          "pin": {"type": "string"}
        }
      },
      "LedgerRequest": {
        "type": "object",
        "required": ["accountNumber", "amount"],
        "properties": {
          "accountNumber": {"type": "string"},
          "agencyNumber": {"type": "string"},
          "amount": {"type": "string", "example": "150.00"}
        }
      }
    }
  }
}`
