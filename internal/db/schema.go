package db

// SchemaSQL contains the sighting table schema. One record per
// identification; records are immutable after insert and never deleted
// (no retention policy).
const SchemaSQL = `
    DEFINE TABLE IF NOT EXISTS sighting SCHEMAFULL;
    DEFINE FIELD IF NOT EXISTS device_id ON sighting TYPE string;
    -- base64 data URL, stored inline
    DEFINE FIELD IF NOT EXISTS image_url ON sighting TYPE string;
    DEFINE FIELD IF NOT EXISTS breed_name ON sighting TYPE string;
    DEFINE FIELD IF NOT EXISTS confidence ON sighting TYPE float;
    DEFINE FIELD IF NOT EXISTS alternative_breeds ON sighting TYPE array<object> FLEXIBLE DEFAULT [];
    DEFINE FIELD IF NOT EXISTS fun_facts ON sighting TYPE array<string> DEFAULT [];
    DEFINE FIELD IF NOT EXISTS rarity ON sighting TYPE string DEFAULT "common";
    DEFINE FIELD IF NOT EXISTS difficulty ON sighting TYPE string DEFAULT "easy";
    DEFINE FIELD IF NOT EXISTS place_of_origin ON sighting TYPE string DEFAULT "Unknown";
    DEFINE FIELD IF NOT EXISTS created_at ON sighting TYPE datetime DEFAULT time::now();

    DEFINE INDEX IF NOT EXISTS sighting_device ON sighting FIELDS device_id;
    DEFINE INDEX IF NOT EXISTS sighting_created ON sighting FIELDS created_at;
`
