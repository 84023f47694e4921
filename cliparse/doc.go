// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse parses server configuration.

Settings come from CLI flags, environment variables, or an optional YAML
config file, in that order of precedence:

	carry-on -p 4118 -d "postgres://..." -t postgres
	PORT=4118 DATABASE_URL=... API_KEY_SALT=... carry-on
	carry-on -f config.yaml

Config file keys: port, database_url, database_type, api_key_salt.

Required settings:

  - DATABASE_URL (-d): sqlite path or postgres connection string
  - API_KEY_SALT (-api-salt): secret for player API key HMAC

Optional settings:

  - PORT (-p): server port (default: 4118)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
*/
package cliparse
