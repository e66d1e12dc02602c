package swagger

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/swaggo/swag"
)

type SwaggerConfig struct {
	Title         string
	SwaggerDocURL string
	AuthURL       string
}

const swaggerHTML = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>{{.Title}}</title>
    <link rel="stylesheet" type="text/css" href="https://unpkg.com/swagger-ui-dist@4.15.5/swagger-ui.css" />
    <style>
        body { margin: 0; background: #fafafa; }
        .login-bar { display: flex; gap: 8px; align-items: center; padding: 12px 20px; background: #8b1a1a; color: #fff; font-family: sans-serif; }
        .login-bar input { padding: 6px 10px; border: 0; border-radius: 3px; }
        .login-bar button { padding: 6px 14px; border: 0; border-radius: 3px; background: #fff; color: #8b1a1a; font-weight: bold; cursor: pointer; }
        .login-bar button:disabled { opacity: 0.6; cursor: not-allowed; }
        #login-status { margin-left: 8px; font-size: 13px; }
    </style>
</head>
<body>
    <div class="login-bar">
        <strong>{{.Title}}</strong>
        <input type="email" id="login-email" placeholder="email" />
        <input type="password" id="login-password" placeholder="password" />
        <button id="login-button" onclick="login()">Log in</button>
        <span id="login-status"></span>
    </div>
    <div id="swagger-ui"></div>

    <script src="https://unpkg.com/swagger-ui-dist@4.15.5/swagger-ui-bundle.js" charset="UTF-8"></script>
    <script>
        const AUTH_URL = "{{.AuthURL}}";
        let ui;

        window.onload = function() {
            ui = SwaggerUIBundle({
                url: "{{.SwaggerDocURL}}",
                dom_id: "#swagger-ui",
                deepLinking: true,
                presets: [SwaggerUIBundle.presets.apis],
                docExpansion: "list",
                validatorUrl: null,
                persistAuthorization: true
            });
        };

        async function login() {
            const email = document.getElementById("login-email").value.trim();
            const password = document.getElementById("login-password").value;
            const status = document.getElementById("login-status");
            const button = document.getElementById("login-button");
            if (!email || !password) {
                status.textContent = "Email and password are required";
                return;
            }

            button.disabled = true;
            try {
                const response = await fetch(AUTH_URL, {
                    method: "POST",
                    headers: { "Content-Type": "application/json" },
                    body: JSON.stringify({ email: email, password: password })
                });
                const body = await response.json();
                if (!response.ok) {
                    throw new Error(body.message || "Login failed");
                }
                const token = body.data && body.data.token;
                if (!token) {
                    throw new Error("No token in response");
                }
                ui.preauthorizeApiKey("BearerAuth", "Bearer " + token);
                status.textContent = "Logged in as " + body.data.user.username;
            } catch (err) {
                status.textContent = err.message;
            } finally {
                button.disabled = false;
            }
        }
    </script>
</body>
</html>`

var swaggerTemplate = template.Must(template.New("swagger").Parse(swaggerHTML))

// ServeSwaggerUI serves Swagger UI with a login bar that authorizes requests
func ServeSwaggerUI(config SwaggerConfig) gin.HandlerFunc {
	if config.Title == "" {
		config.Title = "API Documentation"
	}
	if config.SwaggerDocURL == "" {
		config.SwaggerDocURL = "/swagger/doc.json"
	}
	if config.AuthURL == "" {
		config.AuthURL = "/api/v1/auth/login"
	}

	return func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		if err := swaggerTemplate.Execute(c.Writer, config); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render Swagger UI"})
		}
	}
}

// ServeDoc serves the swagger document registered with swag
func ServeDoc() gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := swag.ReadDoc()
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "swagger document not registered"})
			return
		}
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(doc))
	}
}
