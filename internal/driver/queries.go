package driver

const (
	SaveEncounterQuery = `
		MERGE (e:Encounter {uuid: $uuid})
		SET e.created_at = $created_at,
			e.patient_name = $patient_name,
			e.diagnosis = $diagnosis,
			e.current_status = $current_status,
			e.prognosis = $prognosis
		RETURN e.uuid AS uuid
	`

	SaveFindingQuery = `
		MERGE (f:Finding {name: $name, category: $category})
		ON CREATE SET f.uuid = $uuid, f.created_at = $created_at
		RETURN f.name AS name
	`

	LinkFindingQuery = `
		MATCH (e:Encounter {uuid: $encounter_uuid})
		MATCH (f:Finding {name: $name, category: $category})
		MERGE (e)-[m:MENTIONS]->(f)
		RETURN f.name AS name
	`
)
