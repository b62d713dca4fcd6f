package config

// Schema is the JSON schema for validating configuration files
const Schema = `{
    "$schema": "http://json-schema.org/draft-07/schema#",
    "type": "object",
    "properties": {
        "endpoint": {
            "type": "string",
            "description": "Optional S3-compatible endpoint URL (MinIO, LocalStack)"
        },
        "region": {
            "type": "string"
        },
        "bucket": {
            "type": "string",
            "minLength": 1
        },
        "access_key_id": {
            "type": "string"
        },
        "secret_access_key": {
            "type": "string"
        },
        "staging_dir": {
            "type": "string",
            "description": "Local directory where files wait for upload"
        },
        "force_path_style": {
            "type": "boolean"
        },
        "presign_expiry_seconds": {
            "type": "integer",
            "minimum": 1
        },
        "log_level": {
            "type": "string",
            "enum": ["debug", "info", "warn", "error"]
        },
        "log_format": {
            "type": "string",
            "enum": ["json", "console"]
        }
    },
    "required": ["bucket"]
}`
