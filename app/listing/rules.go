package listing

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Rules holds every tunable of the classification policy: keyword lists,
// platform allowlists, the salary floor and the acceptance threshold.
// Nothing in the classifier is hard-coded beyond this structure.
type Rules struct {
	FrontendKeywords   []string `yaml:"frontend_keywords"`
	TechKeywords       []string `yaml:"tech_keywords"`
	RemoteKeywords     []string `yaml:"remote_keywords"`
	HighSalaryKeywords []string `yaml:"high_salary_keywords"`
	PainPointKeywords  []string `yaml:"pain_point_keywords"`
	ExcludeKeywords    []string `yaml:"exclude_keywords"`
	SeniorityKeywords  []string `yaml:"seniority_keywords"`

	// Platforms whose listings are remote by construction.
	RemotePlatforms []string `yaml:"remote_platforms"`
	// Platforms that consistently carry high-paying positions.
	HighSalaryPlatforms []string `yaml:"high_salary_platforms"`
	// Platforms whose entire job output is accepted unconditionally.
	// Membership is a deliberate trust decision, not inferred.
	TrustedJobPlatforms []string `yaml:"trusted_job_platforms"`
	// Venues whose whole purpose is soliciting ideas and pain points.
	IdeaPlatforms []string `yaml:"idea_platforms"`
	// Social platforms, used for adapter routing rather than scoring.
	SocialPlatforms []string `yaml:"social_platforms"`

	// Minimum extracted annual salary (USD) counted as a good-salary signal.
	SalaryFloor int `yaml:"salary_floor"`
	// Minimum additive score for acceptance when no short-circuit fires.
	// Kept deliberately low: recall is preferred over precision, downstream
	// consumers filter again.
	ScoreThreshold int `yaml:"score_threshold"`
}

// DefaultRules returns the policy tuned against the live source fleet.
func DefaultRules() Rules {
	return Rules{
		FrontendKeywords: []string{
			"developer", "engineer", "programmer", "software", "coding",
			"fullstack", "full-stack", "full stack", "tech", "technical",
			"frontend", "front-end", "front end", "ui", "ux", "ui/ux",
			"javascript", "typescript", "ecmascript", "es6",
			"html", "css", "html5", "css3", "web", "web developer",
			"react", "reactjs", "react.js", "react native",
			"vue", "vuejs", "vue.js", "vue3", "nuxt",
			"angular", "angularjs", "svelte", "sveltekit",
			"next", "nextjs", "next.js", "gatsby", "remix", "astro",
			"solidjs", "qwik", "deno",
			"redux", "mobx", "zustand", "pinia", "vuex",
			"webpack", "vite", "rollup", "esbuild", "babel",
			"tailwind", "tailwindcss", "sass", "scss", "styled-components",
			"react native", "flutter", "ionic", "expo", "pwa",
			"three.js", "threejs", "webgl", "canvas", "d3.js",
			"web developer", "ui developer", "ui engineer",
			"frontend developer", "frontend engineer", "front-end developer",
			"software engineer", "software developer", "web engineer",
			"前端", "前端开发", "web开发", "web前端", "ui开发",
			"全栈", "全栈开发", "h5开发", "移动端开发",
		},
		TechKeywords: []string{
			"tech", "software", "developer", "engineer", "programming", "code",
		},
		RemoteKeywords: []string{
			"remote", "remotely", "remote work", "work from home", "wfh",
			"distributed", "anywhere", "worldwide", "global",
			"location independent", "digital nomad", "home office",
			"virtual", "telecommute", "telework", "flexible location",
			"远程", "远程办公", "在家办公", "居家办公", "全球远程",
			"remote-first", "remote-friendly", "remote-ok",
			"100% remote", "fully remote", "all remote",
		},
		HighSalaryKeywords: []string{
			"120k", "130k", "140k", "150k", "160k", "170k", "180k", "190k", "200k",
			"220k", "250k", "275k", "300k", "350k", "400k", "450k", "500k",
			"10k/month", "12k/month", "15k/month", "18k/month", "20k/month", "25k/month",
			"$10,000/month", "$12,000/month", "$15,000/month", "$18,000/month", "$20,000/month",
			"€100k", "€120k", "€150k", "€180k", "€200k",
			"€8k/month", "€10k/month", "€12k/month", "€15k/month",
			"100k eur", "120k eur", "150k eur",
			"£90k", "£100k", "£120k", "£150k", "£180k", "£200k",
			"£8k/month", "£10k/month", "£12k/month",
			"$60/hour", "$70/hour", "$75/hour", "$80/hour", "$90/hour", "$100/hour",
			"$120/hour", "$150/hour", "$175/hour", "$200/hour", "$250/hour",
			"60/hr", "70/hr", "75/hr", "80/hr", "90/hr", "100/hr", "120/hr", "150/hr",
			"$500/day", "$600/day", "$700/day", "$800/day", "$900/day", "$1000/day",
			"six figure", "six-figure", "6 figure", "6-figure",
			"competitive salary", "competitive compensation",
			"excellent compensation", "top tier", "top-tier",
			"1万/月", "1.2万/月", "1.5万/月", "1.8万/月", "2万/月", "2.5万/月", "3万/月",
			"年薪百万", "百万年薪", "年薪80万", "年薪100万", "年薪120万",
			"月薪1万", "月薪2万", "月薪3万", "月薪5万",
			"senior", "staff", "principal", "architect", "lead", "manager",
			"director", "vp", "head of", "cto", "expert", "specialist",
			"equity", "stock options", "rsu", "bonus", "profit sharing",
			"unlimited pto", "generous compensation",
		},
		PainPointKeywords: []string{
			"looking for", "need help", "struggling with", "pain point", "problem",
			"frustrated", "annoying", "difficult", "hard to", "impossible to",
			"wish there was", "would pay for", "willing to pay", "take my money",
			"someone should", "why doesnt", "is there a", "anyone know",
			"recommend", "suggestion", "advice",
			"how to", "how can i", "how do you", "best way to",
			"validate", "validation", "mvp", "proof of concept", "prototype",
			"idea validation", "market validation", "customer validation",
			"early adopter", "beta user", "beta tester", "feedback",
			"would you use", "would anyone", "interest check", "gauge interest",
			"must have", "essential", "critical", "feature request",
			"missing", "doesnt exist", "cant find",
			"alternative to", "replacement for", "better than",
			"market gap", "opportunity", "niche", "underserved",
			"痛点", "需求", "求助", "寻找", "找不到", "没有好的",
			"付费", "愿意付费", "求购", "需要", "缺少",
			"体验差", "不好用", "难用", "烦人", "麻烦",
			"有没有", "求推荐", "谁能做", "找人开发", "外包",
			"想要", "希望有", "期待", "渴望", "急需",
			"痛苦", "困扰", "问题", "难题", "挑战",
			"市场空白", "商机", "蓝海", "机会",
		},
		ExcludeKeywords: []string{
			"junior", "entry level", "entry-level", "intern", "internship",
			"graduate", "trainee", "apprentice", "beginner",
			"实习", "应届", "初级", "助理",
			"sales", "marketing", "hr", "recruiter", "recruitment",
			"business development", "account manager", "customer service",
			"销售", "市场", "人力资源", "客服",
			"up to $80k", "up to 80k", "$40k", "$50k", "$60k", "$70k",
			"4万", "5万", "6万", "7万年薪",
			"unpaid", "volunteer", "no pay", "equity only",
			"无薪", "志愿者", "纯股权",
		},
		SeniorityKeywords: []string{
			"senior", "lead", "architect",
		},
		RemotePlatforms: []string{
			"RemoteOK", "WeWorkRemotely", "We Work Remotely", "Remote.co", "FlexJobs",
			"JustRemote", "Remotive", "Working Nomads", "Pangian",
			"SkipTheDrive", "AngelList", "Toptal", "Gun.io",
			"Reddit", "V2EX", "HackerNews", "Dev.to", "Indie",
			"Product Hunt", "YCombinator", "StartupJobs",
		},
		HighSalaryPlatforms: []string{
			"AngelList", "Toptal", "Turing", "Arc.dev", "X-Team",
			"Gun.io", "Gigster", "Hired", "YCombinator",
			"CryptoJobs", "Web3 Jobs", "DeFi Jobs",
		},
		TrustedJobPlatforms: []string{
			"V2EX", "RemoteOK", "Working Nomads",
		},
		IdeaPlatforms: []string{
			"Reddit r/SomebodyMakeThis", "Reddit r/AppIdeas",
			"Reddit r/Startup_Ideas", "Reddit r/Business_Ideas",
			"Product Hunt", "Indie Hackers", "V2EX 奇思妙想",
		},
		SocialPlatforms: []string{
			"LinkedIn", "Twitter", "Facebook", "Instagram", "Discord",
			"Telegram", "Slack", "Medium", "TikTok", "Threads",
			"Mastodon", "YouTube", "Pinterest", "Quora",
		},
		SalaryFloor:    40000,
		ScoreThreshold: 1,
	}
}

// LoadRules reads a YAML override file on top of the defaults. Only fields
// present in the file replace their defaults; an empty path returns the
// defaults unchanged.
func LoadRules(path string) (Rules, error) {
	rules := DefaultRules()
	if path == "" {
		return rules, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return rules, fmt.Errorf("failed to read rules file: %w", err)
	}

	if err := yaml.Unmarshal(data, &rules); err != nil {
		return rules, fmt.Errorf("failed to parse rules file %s: %w", path, err)
	}

	return rules, nil
}
