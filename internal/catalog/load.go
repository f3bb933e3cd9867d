package catalog

import (
	"database/sql"
	"fmt"
)

// Load reads the full catalog from the database into memory. It is called
// once at startup; the returned Catalog never touches the database again.
func Load(db *sql.DB) (*Catalog, error) {
	var data Data

	err := db.QueryRow(`
		SELECT reference_currency, exchange_rate, source_code_surcharge
		FROM pricing_config
		WHERE id = 1
	`).Scan(&data.ReferenceCurrency, &data.ExchangeRate, &data.SourceCodeSurcharge)
	if err != nil {
		return nil, fmt.Errorf("load pricing config: %w", err)
	}

	if data.ProjectTypes, err = loadProjectTypes(db); err != nil {
		return nil, err
	}
	if data.Features, err = loadFeatures(db); err != nil {
		return nil, err
	}
	if data.BusinessSizes, err = loadMultipliers(db, "business_sizes"); err != nil {
		return nil, err
	}
	if data.CurrentStates, err = loadMultipliers(db, "current_states"); err != nil {
		return nil, err
	}
	if data.Timelines, err = loadMultipliers(db, "timelines"); err != nil {
		return nil, err
	}
	if data.Currencies, err = loadCurrencies(db); err != nil {
		return nil, err
	}
	if data.PaymentPlans, err = loadPaymentPlans(db); err != nil {
		return nil, err
	}
	if data.PlanRates, err = loadPlanRates(db); err != nil {
		return nil, err
	}

	if _, ok := data.PlanRates[data.ReferenceCurrency]; !ok {
		return nil, fmt.Errorf("plan rates missing reference currency %q", data.ReferenceCurrency)
	}

	return New(data), nil
}

func loadProjectTypes(db *sql.DB) ([]ProjectType, error) {
	rows, err := db.Query(`
		SELECT key, base_price, label, description, icon
		FROM project_types
		ORDER BY sort_order
	`)
	if err != nil {
		return nil, fmt.Errorf("load project types: %w", err)
	}
	defer rows.Close()

	var types []ProjectType
	for rows.Next() {
		var pt ProjectType
		if err := rows.Scan(&pt.Key, &pt.BasePrice, &pt.Label, &pt.Description, &pt.Icon); err != nil {
			return nil, fmt.Errorf("scan project type: %w", err)
		}
		types = append(types, pt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load project types: %w", err)
	}

	features, err := loadProjectTypeFeatures(db)
	if err != nil {
		return nil, err
	}
	for i := range types {
		types[i].Features = features[types[i].Key]
	}

	return types, nil
}

func loadProjectTypeFeatures(db *sql.DB) (map[string][]string, error) {
	rows, err := db.Query(`
		SELECT project_type_key, feature_key
		FROM project_type_features
		ORDER BY project_type_key, sort_order
	`)
	if err != nil {
		return nil, fmt.Errorf("load project type features: %w", err)
	}
	defer rows.Close()

	byType := make(map[string][]string)
	for rows.Next() {
		var typeKey, featureKey string
		if err := rows.Scan(&typeKey, &featureKey); err != nil {
			return nil, fmt.Errorf("scan project type feature: %w", err)
		}
		byType[typeKey] = append(byType[typeKey], featureKey)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load project type features: %w", err)
	}

	return byType, nil
}

func loadFeatures(db *sql.DB) ([]Feature, error) {
	rows, err := db.Query(`
		SELECT key, cost, label, description, icon
		FROM features
		ORDER BY key
	`)
	if err != nil {
		return nil, fmt.Errorf("load features: %w", err)
	}
	defer rows.Close()

	var features []Feature
	for rows.Next() {
		var f Feature
		if err := rows.Scan(&f.Key, &f.Cost, &f.Label, &f.Description, &f.Icon); err != nil {
			return nil, fmt.Errorf("scan feature: %w", err)
		}
		features = append(features, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load features: %w", err)
	}

	return features, nil
}

func loadMultipliers(db *sql.DB, table string) ([]MultiplierOption, error) {
	// table is one of the three fixed multiplier table names, never user input.
	rows, err := db.Query(`
		SELECT key, label, multiplier, icon
		FROM ` + table + `
		ORDER BY sort_order
	`)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", table, err)
	}
	defer rows.Close()

	var options []MultiplierOption
	for rows.Next() {
		var m MultiplierOption
		if err := rows.Scan(&m.Key, &m.Label, &m.Multiplier, &m.Icon); err != nil {
			return nil, fmt.Errorf("scan %s row: %w", table, err)
		}
		options = append(options, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load %s: %w", table, err)
	}

	return options, nil
}

func loadCurrencies(db *sql.DB) ([]Currency, error) {
	rows, err := db.Query(`
		SELECT code, symbol, flag, name
		FROM currencies
		ORDER BY sort_order
	`)
	if err != nil {
		return nil, fmt.Errorf("load currencies: %w", err)
	}
	defer rows.Close()

	var currencies []Currency
	for rows.Next() {
		var cur Currency
		if err := rows.Scan(&cur.Code, &cur.Symbol, &cur.Flag, &cur.Name); err != nil {
			return nil, fmt.Errorf("scan currency: %w", err)
		}
		currencies = append(currencies, cur)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load currencies: %w", err)
	}

	return currencies, nil
}

func loadPaymentPlans(db *sql.DB) ([]PaymentPlan, error) {
	rows, err := db.Query(`
		SELECT key, label, description, icon, badge
		FROM payment_plans
		ORDER BY sort_order
	`)
	if err != nil {
		return nil, fmt.Errorf("load payment plans: %w", err)
	}
	defer rows.Close()

	var plans []PaymentPlan
	for rows.Next() {
		var p PaymentPlan
		if err := rows.Scan(&p.Key, &p.Label, &p.Description, &p.Icon, &p.Badge); err != nil {
			return nil, fmt.Errorf("scan payment plan: %w", err)
		}
		plans = append(plans, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load payment plans: %w", err)
	}

	return plans, nil
}

func loadPlanRates(db *sql.DB) (map[string]Rates, error) {
	rows, err := db.Query(`SELECT currency_code, hourly_rate, hosting_monthly FROM plan_rates`)
	if err != nil {
		return nil, fmt.Errorf("load plan rates: %w", err)
	}
	defer rows.Close()

	rates := make(map[string]Rates)
	for rows.Next() {
		var code string
		var r Rates
		if err := rows.Scan(&code, &r.Hourly, &r.HostingMonthly); err != nil {
			return nil, fmt.Errorf("scan plan rate: %w", err)
		}
		rates[code] = r
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load plan rates: %w", err)
	}

	return rates, nil
}
