// Package config loads the application configuration.
//
// Values come from, in increasing precedence: built-in defaults, an optional
// YAML file, and environment variables (optionally seeded from a .env file).
// Every setting has a YAML key and an environment variable:
//
//	vectorstore:
//	  backend: cloud          # VECTORSTORE_BACKEND
//	  cloud:
//	    url: https://xyz.cloud.qdrant.io   # QDRANT_CLOUD_URL
//	    api_key: ...                       # QDRANT_CLOUD_API_KEY
//	embedding:
//	  endpoint: http://localhost:11434     # EMBEDDING_ENDPOINT
//	server:
//	  address: ":5000"                     # SERVER_ADDRESS
//
// Module hands each section to Fx so the packages' FXModules can consume them.
package config
