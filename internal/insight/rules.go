package insight

import "github.com/somahealth/vault-companion/models"

// rule binds one output perspective to the knowledge source that gates it
// and the canned block emitted when that source is enabled. Perspective and
// RequiredSource usually coincide; the mental_health perspective is the
// exception — it rides on the holistic source.
type rule struct {
	perspective    string
	requiredSource string
	block          models.InsightBlock
}

// ruleSet is one dispatch branch of the engine: the record types that share
// it and the candidate rules in authoring order. That order is the display
// order of the resulting insight map.
type ruleSet struct {
	recordTypes []string
	rules       []rule
}

// ruleSets is the complete hand-authored rule table. Record types absent
// from every branch produce empty insight maps.
var ruleSets = []ruleSet{
	{
		recordTypes: []string{"bloodwork", "laboratory"},
		rules: []rule{
			{
				perspective:    SourceMedical,
				requiredSource: SourceMedical,
				block: models.InsightBlock{
					Summary: "Your bloodwork results show normal ranges for most markers.",
					Recommendations: []string{
						"Maintain your current healthy lifestyle habits.",
						"Consider discussing your cholesterol levels at your next check-up, as they are on the upper end of normal.",
					},
					Sources: []string{
						"American Heart Association Guidelines 2024",
						"Journal of Clinical Medicine, Vol. 42, pp. 78-92",
					},
				},
			},
			{
				perspective:    SourceNutritional,
				requiredSource: SourceNutritional,
				block: models.InsightBlock{
					Summary: "Your cholesterol and glucose levels indicate potential dietary adjustments could be beneficial.",
					Recommendations: []string{
						"Consider increasing foods rich in omega-3 fatty acids (fatty fish, flaxseeds).",
						"Reduce refined carbohydrate intake to help maintain glucose stability.",
						"Increase fiber consumption through whole grains, vegetables, and legumes.",
					},
					Sources: []string{
						"Journal of Nutrition, 2024;15(3):221-230",
						"Harvard School of Public Health Dietary Guidelines",
					},
				},
			},
			{
				perspective:    SourceHolistic,
				requiredSource: SourceHolistic,
				block: models.InsightBlock{
					Summary: "Your test results indicate potential for improved wellness through lifestyle integration.",
					Recommendations: []string{
						"Consider mind-body practices like meditation to reduce stress, which can impact both cholesterol and blood sugar.",
						"Regular moderate exercise (30 minutes daily) may help improve these values naturally.",
					},
					Sources: []string{
						"International Journal of Holistic Health, 2023",
						"Mind-Body Medical Institute Research Review",
					},
				},
			},
			{
				perspective:    SourceEastern,
				requiredSource: SourceEastern,
				block: models.InsightBlock{
					Summary: "From a Traditional Chinese Medicine perspective, your results suggest potential liver qi stagnation.",
					Recommendations: []string{
						"Consider herbs like dandelion root tea to support liver function.",
						"Acupuncture points related to liver meridian might help balance energy flow.",
					},
					Sources: []string{
						"Journal of Traditional Chinese Medicine, 2023",
						"Eastern Medicine Comprehensive Guide, 3rd Edition",
					},
				},
			},
		},
	},
	{
		recordTypes: []string{"vaccination"},
		rules: []rule{
			{
				perspective:    SourceMedical,
				requiredSource: SourceMedical,
				block: models.InsightBlock{
					Summary: "Your COVID-19 booster vaccination is up-to-date according to current guidelines.",
					Recommendations: []string{
						"No additional COVID-19 boosters needed at this time.",
						"Continue following standard preventive measures.",
					},
					Sources: []string{
						"CDC Vaccination Schedule 2024",
						"WHO Immunization Guidelines",
					},
				},
			},
			{
				perspective:    SourceHolistic,
				requiredSource: SourceHolistic,
				block: models.InsightBlock{
					Summary: "Consider supporting your immune system post-vaccination.",
					Recommendations: []string{
						"Ensure adequate rest for 24-48 hours after vaccination.",
						"Stay well-hydrated and maintain a nutrient-rich diet during this period.",
					},
					Sources: []string{
						"Integrative Medicine Journal, 2024",
						"Holistic Immunology Research Institute",
					},
				},
			},
			{
				perspective:    SourceNutritional,
				requiredSource: SourceNutritional,
				block: models.InsightBlock{
					Summary: "Nutrition can play a supportive role following vaccination.",
					Recommendations: []string{
						"Foods rich in vitamin C, D, and zinc may support immune function.",
						"Consider anti-inflammatory foods like fatty fish, berries, and turmeric.",
					},
					Sources: []string{
						"Nutrition and Immunology Handbook, 2023",
						"Journal of Nutritional Biochemistry",
					},
				},
			},
		},
	},
	{
		recordTypes: []string{"appointment"},
		rules: []rule{
			{
				perspective:    SourceMedical,
				requiredSource: SourceMedical,
				block: models.InsightBlock{
					Summary: "Regular physical examinations are an important part of preventive healthcare.",
					Recommendations: []string{
						"Prepare a list of any symptoms or concerns to discuss with your doctor.",
						"Bring a list of current medications and supplements.",
						"Consider asking about age-appropriate screenings.",
					},
					Sources: []string{
						"Preventive Care Guidelines 2024",
						"American Academy of Family Physicians",
					},
				},
			},
			{
				perspective:    SourcePhysiotherapy,
				requiredSource: SourcePhysiotherapy,
				block: models.InsightBlock{
					Summary: "Annual check-ups can benefit from physiotherapy considerations.",
					Recommendations: []string{
						"Discuss any joint pain, mobility issues, or physical limitations.",
						"Ask about posture assessment if you have desk-based work.",
					},
					Sources: []string{
						"American Physical Therapy Association",
						"Journal of Physiotherapy Practice",
					},
				},
			},
		},
	},
	{
		recordTypes: []string{"imaging"},
		rules: []rule{
			{
				perspective:    SourceMedical,
				requiredSource: SourceMedical,
				block: models.InsightBlock{
					Summary: "MRI findings are consistent with a left-sided S1 radiculopathy due to L5-S1 disc protrusion and annular rupture compressing the dural sac and S1 nerve root. Conservative treatment is typically first-line.",
					Recommendations: []string{
						"Initiate conservative treatment with NSAIDs and neuropathic agents such as gabapentin.",
						"Refer to a spine specialist if no symptom improvement after 6–8 weeks.",
						"Consider epidural steroid injection or minimally invasive discectomy if conservative treatment fails.",
					},
					Sources: []string{
						"Johns Hopkins Radiology Review, 2021 – Lumbar Disc Pathologies and Nerve Root Compression",
						"American Association of Neurological Surgeons (AANS) Guidelines for Lumbar Disc Herniation, 2020",
					},
				},
			},
			{
				perspective:    SourcePhysiotherapy,
				requiredSource: SourcePhysiotherapy,
				block: models.InsightBlock{
					Summary: "The disc herniation pattern suggests benefit from extension-based physiotherapy. Preserved lumbar lordosis is favorable for biomechanical recovery.",
					Recommendations: []string{
						"Start McKenzie-based extension exercises under supervision.",
						"Limit sitting to <30 minutes at a time and avoid flexion-dominant movements.",
						"Add core stabilization and neural gliding exercises targeting the S1 nerve root.",
					},
					Sources: []string{
						"McKenzie Institute International, 2022 – Mechanical Diagnosis and Therapy for Lumbar Radiculopathy",
						"Journal of Orthopaedic & Sports Physical Therapy (JOSPT), 2021 – Evidence-Based Treatment for Lumbar Disc Herniation",
					},
				},
			},
			{
				perspective:    SourceHolistic,
				requiredSource: SourceHolistic,
				block: models.InsightBlock{
					Summary: "Chronic inflammation and nerve irritation may benefit from an integrative approach combining anti-inflammatory nutrition and energy flow therapies like acupuncture.",
					Recommendations: []string{
						"Introduce turmeric (curcumin) and omega-3 supplements to reduce inflammation.",
						"Practice yin yoga or gentle somatic breathwork to reduce stress-induced tension.",
						"Explore acupuncture targeting BL25–BL40 and GB30 meridians.",
					},
					Sources: []string{
						"Harvard Integrative Medicine Newsletter, April 2023 – Multimodal Support for Lumbar Disc Disorders",
						"Traditional Chinese Medicine Journal, 2022 – Acupuncture for Lumbar Radiculopathy",
					},
				},
			},
			{
				perspective:    PerspectiveMentalHealth,
				requiredSource: SourceHolistic,
				block: models.InsightBlock{
					Summary: "Radiculopathy-related pain can be worsened by psychological factors such as fear-avoidance and catastrophizing, which increase muscle guarding and pain perception.",
					Recommendations: []string{
						"Engage in pain-focused cognitive behavioral therapy (CBT).",
						"Use mobile apps like Curable for neuroplastic pain retraining.",
						"Incorporate mindfulness-based stress reduction (MBSR) into daily routine.",
					},
					Sources: []string{
						"Pain Psychology Center LA, 2021 – Neuroplastic Approaches to Sciatic Pain Management",
						"Journal of Pain Research, 2022 – Mindfulness-Based Interventions for Chronic Sciatica",
					},
				},
			},
		},
	},
	{
		recordTypes: []string{"consultation", "trigger_point"},
		rules: []rule{
			{
				perspective:    SourceMedical,
				requiredSource: SourceMedical,
				block: models.InsightBlock{
					Summary: "The patient's symptoms align with referred pain patterns caused by psoas and thoracic trigger points. These can mimic disc-related radiculopathy. Conservative manual release is an appropriate first-line treatment.",
					Recommendations: []string{
						"Continue monitoring for any recurring nerve-related symptoms.",
						"If pain persists or radiates, seek imaging to rule out structural causes.",
						"Initiate core strengthening post-recovery to reduce future strain on psoas.",
					},
					Sources: []string{
						"American Academy of Pain Medicine, 2022 – Differentiating Myofascial Pain vs. Disc Herniation",
						"Mayo Clinic Proceedings, 2023 – Clinical Relevance of Trigger Point Diagnosis",
					},
				},
			},
			{
				perspective:    SourcePhysiotherapy,
				requiredSource: SourcePhysiotherapy,
				block: models.InsightBlock{
					Summary: "Psoas dysfunction contributes to altered pelvic tilt and lumbar mechanics. Release should be followed by controlled movement to prevent recurrence.",
					Recommendations: []string{
						"Begin psoas-lengthening stretches after 7–10 days of rest.",
						"Use diaphragmatic breathing to relax hip flexors.",
						"Add thoracic mobility exercises to balance posterior tension.",
					},
					Sources: []string{
						"Journal of Bodywork & Movement Therapies, 2021 – Psoas Muscle and Pelvic Stability",
						"PhysioNetwork, 2023 – Functional Rehab after Trigger Point Release",
					},
				},
			},
			{
				perspective:    SourceHolistic,
				requiredSource: SourceHolistic,
				block: models.InsightBlock{
					Summary: "The emotional link to chronic pain can reinforce muscular guarding. Addressing the energetic and emotional components may improve long-term outcomes.",
					Recommendations: []string{
						"Incorporate somatic movement therapy such as Feldenkrais or gentle qigong.",
						"Consider journaling or expressive therapy to process fear-based beliefs about pain.",
						"Use calming herbs like ashwagandha or valerian to support nervous system recovery.",
					},
					Sources: []string{
						"Integrative Therapies Review, 2022 – Energetic Perspectives on Hip-Back Pain",
						"Harvard Mind-Body Medicine Updates, 2023 – Emotional Impact of Chronic Musculoskeletal Pain",
					},
				},
			},
			{
				perspective:    PerspectiveMentalHealth,
				requiredSource: SourceHolistic,
				block: models.InsightBlock{
					Summary: "Fear of structural damage (e.g., disc herniation) can create a fear-avoidance loop, worsening muscle guarding and pain. Addressing beliefs can support recovery.",
					Recommendations: []string{
						"Engage in psychoeducation around the brain-pain connection (e.g., Sarno model).",
						"Use tools like the Curable app or Pain Reprocessing Therapy.",
						"Practice self-compassion techniques to reframe identity from 'the guy with a bad back'.",
					},
					Sources: []string{
						"Journal of Pain Psychology, 2021 – Identity and Chronic Pain",
						"Pain Reprocessing Therapy Manual, 2023 – Fear Avoidance and Recovery",
					},
				},
			},
		},
	},
}
