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
  <title>Payment Instruction Processor API Docs</title>
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
    "title": "Payment Instruction Processor API",
    "version": "1.0.0"
  },
  "paths": {
    "/payment-instructions": {
      "post": {
        "summary": "Process a natural-language payment instruction against an account snapshot",
        "security": [
          {
            "BasicAuth": []
          }
        ],
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "required": ["instruction", "accounts"],
                "properties": {
                  "instruction": {
                    "type": "string",
                    "example": "DEBIT 30 USD FROM ACCOUNT milly FOR CREDIT TO ACCOUNT jalil ON 2026-02-21"
                  },
                  "accounts": {
                    "type": "array",
                    "items": {
                      "type": "object",
                      "required": ["account_id", "balance", "currency"],
                      "properties": {
                        "account_id": {"type": "string", "example": "milly"},
                        "balance": {"type": "integer", "example": 230},
                        "currency": {"type": "string", "example": "USD"}
                      }
                    }
                  }
                }
              }
            }
          }
        },
        "responses": {
          "200": {
            "description": "Transaction executed or scheduled; the record carries status_code AP00 or AP02",
            "content": {
              "application/json": {
                "schema": {"$ref": "#/components/schemas/InstructionEnvelope"}
              }
            }
          },
          "400": {
            "description": "Transaction failed or malformed request; the record carries the failure status_code",
            "content": {
              "application/json": {
                "schema": {"$ref": "#/components/schemas/InstructionEnvelope"}
              }
            }
          },
          "401": {"description": "Unauthorized"},
          "405": {"description": "Method not allowed"}
        }
      }
    },
    "/health": {
      "get": {
        "summary": "Liveness probe",
        "responses": {
          "200": {"description": "Service is up"}
        }
      }
    }
  },
  "components": {
    "schemas": {
      "InstructionEnvelope": {
        "type": "object",
        "properties": {
          "success": {"type": "boolean"},
          "message": {"type": "string"},
          "data": {
            "type": "object",
            "properties": {
              "type": {"type": "string", "nullable": true, "enum": ["DEBIT", "CREDIT"]},
              "amount": {"type": "number", "nullable": true},
              "currency": {"type": "string", "nullable": true},
              "debit_account": {"type": "string", "nullable": true},
              "credit_account": {"type": "string", "nullable": true},
              "execute_by": {"type": "string", "nullable": true, "example": "2026-02-21"},
              "status": {"type": "string", "enum": ["successful", "pending", "failed"]},
              "status_reason": {"type": "string"},
              "status_code": {
                "type": "string",
                "enum": ["AP00", "AP02", "AM01", "CU01", "CU02", "AC01", "AC02", "AC03", "AC04", "DT01", "SY01", "SY02", "SY03"]
              },
              "accounts": {
                "type": "array",
                "items": {
                  "type": "object",
                  "properties": {
                    "account_id": {"type": "string"},
                    "balance": {"type": "integer"},
                    "balance_before": {"type": "integer"},
                    "currency": {"type": "string"}
                  }
                }
              }
            }
          },
          "errors": {
            "type": "array",
            "items": {"type": "string"}
          }
        }
      }
    },
    "securitySchemes": {
      "BasicAuth": {
        "type": "http",
        "scheme": "basic"
      }
    }
  }
}`
