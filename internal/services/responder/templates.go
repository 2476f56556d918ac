package responder

// Topic identifies which curated answer applies to a question, if any.
type Topic string

const (
	TopicSyntheticMilk   Topic = "synthetic-milk"
	TopicWaterInMilk     Topic = "water-in-milk"
	TopicDetergentInMilk Topic = "detergent-in-milk"
	TopicStarchInMilk    Topic = "starch-in-milk"
	TopicUreaInMilk      Topic = "urea-in-milk"
	TopicMilk            Topic = "milk"
	TopicCereal          Topic = "cereal"
	TopicSpice           Topic = "spice"
	TopicOil             Topic = "oil"
	TopicHoney           Topic = "honey"
	TopicGenericFood     Topic = "generic-food"
	TopicUnrelated       Topic = "unrelated"
)

// topicTemplates holds the curated FSSAI answers returned when a question
// classifies to a known topic and relevant corpus paragraphs exist.
var topicTemplates = map[Topic]string{
	TopicSyntheticMilk: `According to the FSSAI food adulteration testing manual, here are specific tests to detect synthetic milk:

1. Taste Test: Synthetic milk has a bitter taste, while pure milk has a naturally sweet taste.

2. Touch Test: Rub a few drops of milk between your fingers. Synthetic milk gives a soapy feeling due to detergents, while pure milk feels smooth.

3. Heat Test: When heated, synthetic milk turns yellowish, while pure milk develops a characteristic thin film on top.

4. Smell Test: Synthetic milk often has a faint chemical smell, while pure milk has a mild, pleasant aroma.

5. Lactometer Test: Synthetic milk typically shows abnormal lactometer readings due to its different density compared to pure milk.

6. Horizontal Spread Test: Place a drop of milk on a flat surface. Pure milk spreads slowly, while synthetic milk spreads quickly due to added surfactants.

Always purchase milk from reputable sources and report suspected adulteration to food safety authorities. If you suspect synthetic milk, it's best to avoid consumption as it may contain harmful chemicals like urea, caustic soda, and detergents.`,

	TopicWaterInMilk: `According to the FSSAI food adulteration testing manual, here are specific tests to detect water adulteration in milk:

1. Lactometer Test: This is the most common test. A lactometer measures the density of milk. Pure milk has a specific gravity between 1.026 and 1.030. Lower readings indicate water addition.

2. Drop Test: Put a drop of milk on a sloping surface. Pure milk flows slowly leaving a white trail, while milk adulterated with water flows quickly without leaving a trail.

3. Freezing Point Test: Pure milk freezes at -0.5°C to -0.6°C. Water addition raises this temperature closer to 0°C.

4. Milk Solids Test: Measure the milk solids content. Water dilution reduces the percentage of milk solids below the standard levels.

5. Cream Line Test: Let the milk stand in a transparent container. Pure milk forms a distinct cream line, while watered milk shows a less pronounced or absent cream line.

These tests can help you identify if your milk has been adulterated with water. Always purchase milk from reputable sources and report suspected adulteration to food safety authorities.`,

	TopicDetergentInMilk: `According to the FSSAI food adulteration testing manual, here are specific tests to detect detergent adulteration in milk:

1. Shake Test: Shake 5-10ml of milk sample with an equal amount of water. Excessive froth that remains stable for a long time indicates detergent presence. Pure milk gives a thin layer of foam that disappears quickly.

2. Bromocresol Purple Test: Add a few drops of bromocresol purple solution to the milk sample. A violet color indicates the presence of detergent.

3. Methylene Blue Test: Mix 5ml of milk with 5ml of methylene blue solution. Shake well and let it stand. If the blue color disappears faster than in pure milk, detergent may be present.

4. Rosolic Acid Test: Add a few drops of rosolic acid solution (0.05%) to 5ml of milk. A rose-red color indicates the presence of detergent.

5. Phenolphthalein Test: Add a few drops of phenolphthalein solution to the milk. A pink color indicates the presence of soap or detergent.

Detergents are added to milk to give it a thick, rich appearance and to prevent it from curdling. Consumption of detergent-adulterated milk can cause food poisoning and gastrointestinal complications. Always purchase milk from reputable sources.`,

	TopicStarchInMilk: `According to the FSSAI food adulteration testing manual, here are specific tests to detect starch adulteration in milk:

1. Iodine Test: Add a few drops of iodine solution or tincture of iodine to the milk. If milk turns blue, it indicates the presence of starch. Pure milk shows a yellowish color with iodine.

2. Microscopic Examination: Place a drop of milk on a slide and examine under a microscope after adding a drop of iodine solution. Starch granules appear blue-black and can be identified by their characteristic shape.

3. Lugol's Solution Test: Add a few drops of Lugol's solution (iodine-potassium iodide solution) to 3ml of milk. Development of blue color indicates the presence of starch.

4. Boiling Test: Boil the milk and let it cool. Starch-adulterated milk becomes thick and viscous upon cooling.

Starch is added to milk to increase its thickness and viscosity, making it appear rich in fat. Consumption of starch-adulterated milk can cause digestive issues, especially in infants and elderly people. Always purchase milk from reputable sources.`,

	TopicUreaInMilk: `According to the FSSAI food adulteration testing manual, here are specific tests to detect urea adulteration in milk:

1. Urease-Bromothymol Blue Test: Take 5ml of milk in a test tube, add 0.2ml of urease (2% solution) and 0.1ml of bromothymol blue (0.5%) solution. Shake well and note the color change after 10 minutes. Development of blue color indicates presence of urea.

2. DMAB Test: Add 5ml of p-dimethylaminobenzaldehyde (DMAB) solution to 5ml of milk. Development of a distinct yellow color indicates the presence of urea.

3. Paradimethylaminobenzaldehyde Test: Mix 5ml of milk with 5ml of 24% trichloroacetic acid solution and filter. Add 0.5ml of paradimethylaminobenzaldehyde reagent to the filtrate. A yellow color indicates the presence of urea.

4. Urease Paper Strip Test: Dip a urease-treated paper strip into the milk sample. A color change to blue-green indicates the presence of urea.

Urea is added to milk to increase non-protein nitrogen content, making it appear to have higher protein content. Consumption of urea-adulterated milk can cause kidney and liver damage. Always purchase milk from reputable sources.`,

	TopicMilk: `According to the FSSAI food adulteration testing manual, here are methods to detect milk adulteration:

1. Water in milk: Put a drop of milk on a sloping surface. Pure milk flows slowly leaving a white trail, while adulterated milk flows quickly without leaving a trail.

2. Starch in milk: Add a few drops of iodine solution or tincture of iodine to the milk. If milk turns blue, it indicates the presence of starch.

3. Detergent in milk: Shake 5-10ml of milk sample with an equal amount of water. Excessive froth indicates detergent presence. Pure milk gives a thin layer of foam that disappears quickly.

4. Synthetic milk: Synthetic milk has a bitter taste, gives a soapy feeling when rubbed between fingers, and turns yellowish when heated. Pure milk has a sweet taste.

5. Urea in milk: Take 5ml of milk in a test tube, add 0.2ml of urease (2% solution) and 0.1ml of bromothymol blue (0.5%) solution. Shake well and note the color change after 10 minutes. Development of blue color indicates presence of urea.

These simple tests can help you identify common adulterants in milk. Always purchase milk from reputable sources and report suspected adulteration to food safety authorities.`,

	TopicCereal: `According to the FSSAI food adulteration testing manual, here are methods to test cereals for adulteration:

1. Visual Inspection: Spread a small amount of cereal on a white plate and examine under good light. Look for unusual colors, foreign particles, insect fragments, or inconsistent grain size. Pure cereals have uniform appearance.

2. Water Test: Place a small amount in a glass of water and stir gently. Pure cereals sink while adulterants like stones, sand, or ergot (fungal bodies) will either float or sink at different rates.

3. Detection of Sand/Dirt in Wheat and Other Flour: Take a small quantity of sample in a test tube, add water, shake well and allow to stand. The sand and dirt settle down at the bottom.

4. Detection of Iron Filings: Spread a thin layer of the sample on a piece of paper. Run a magnet over it. Iron filings, if present, will cling to the magnet.

5. Chalk Powder Test: Add a few drops of diluted hydrochloric acid (vinegar can be used as a safer alternative) to the cereal. If it fizzes, chalk powder (calcium carbonate) is present.

These tests can help you identify common adulterants in cereals and flours. Always store cereals in airtight containers and purchase from reputable sources.`,

	TopicSpice: `According to the FSSAI food adulteration testing manual, here are methods to test spices for adulteration:

1. Turmeric Powder:
   - Test for Metanil Yellow: Add a few drops of concentrated hydrochloric acid to a teaspoon of turmeric powder. A magenta/pink color indicates the presence of metanil yellow, a non-permitted color.
   - Test for Lead Chromate: Mix half teaspoon of turmeric in about 5ml of water. Add a few drops of concentrated hydrochloric acid. A pink/purple color indicates lead chromate.

2. Chili Powder:
   - Test for Artificial Colors: Take a small amount of chili powder in a test tube. Add a few ml of water and shake. Add a few drops of concentrated hydrochloric acid. If the acid layer turns pink/red, it indicates the presence of artificial colors.
   - Test for Brick Powder: Sprinkle the sample on water in a glass. Brick powder will sink immediately.

3. Black Pepper:
   - Test for Papaya Seeds: Drop in water. Pure pepper sinks while papaya seeds (a common adulterant) float.
   - Visual Inspection: Genuine black pepper has a wrinkled surface, while artificial ones have a smooth surface.

4. General Spice Test:
   - Test for Sawdust: Add a pinch of the spice to a glass of water. Sawdust will float while the pure spice will sink.
   - Test for Starch: Add a few drops of iodine solution. A blue-black color indicates the presence of starch.

Always buy spices from reputable sources and store them in airtight containers away from direct sunlight.`,

	TopicOil: `According to the FSSAI food adulteration testing manual, here are methods to test oils and fats for adulteration:

1. Test for Argemone Oil in Edible Oils:
   - Take 5ml of oil in a test tube.
   - Add 5ml of concentrated nitric acid.
   - Shake well and allow to stand for 2 minutes.
   - A red to reddish-brown color in the lower acidic layer indicates the presence of argemone oil.

2. Test for Mineral Oil in Edible Oils:
   - Take 5ml of oil in a test tube.
   - Add 5ml of 1% potassium hydroxide solution.
   - Shake well and boil in a water bath for 5-10 minutes.
   - Formation of a turbid solution indicates the presence of mineral oil.

3. Test for Rancidity in Oils:
   - Take 5ml of oil in a test tube.
   - Add 5ml of concentrated hydrochloric acid.
   - Add a pinch of sugar and shake well.
   - Development of a red color indicates rancidity.

4. Test for Vanaspati in Ghee:
   - Take a small amount of ghee in a test tube.
   - Add an equal amount of concentrated hydrochloric acid.
   - Add a pinch of sugar and shake well.
   - A crimson red color in the acid layer indicates the presence of vanaspati.

5. Simple Physical Tests:
   - Pure oils have a characteristic odor and taste.
   - Pure ghee melts immediately in the mouth, while adulterated ghee leaves a sticky residue.
   - Pure oils leave no residue when rubbed between fingers.

Always purchase oils and fats from reputable sources and check for FSSAI certification on the packaging.`,

	TopicHoney: `According to the FSSAI food adulteration testing manual, here are methods to test honey for adulteration:

1. Fiehe's Test (For Invert Sugar Syrup):
   - Take 5ml of honey in a test tube.
   - Add 5ml of solvent ether and shake well.
   - Separate the ether layer and add 0.5ml of resorcinol solution (1% in hydrochloric acid).
   - A cherry red color indicates the presence of invert sugar.

2. Water Test:
   - Put a drop of honey on your thumb.
   - If it spreads around or spills, it is adulterated.
   - Pure honey will stay intact on your thumb.

3. Thread Formation Test:
   - Put a small amount of honey on a thumb.
   - Touch it with your index finger and slowly separate the fingers.
   - Pure honey forms a continuous thread between the fingers, while adulterated honey breaks.

4. Flame Test:
   - Dip a cotton wick in honey and light it with a match.
   - If the honey is pure, the wick will burn.
   - If it is adulterated with water, the wick will not burn.

5. Paper Test:
   - Put a drop of honey on a piece of paper.
   - Pure honey will not be absorbed, while adulterated honey will be absorbed leaving a wet mark.

Always purchase honey from reputable sources and check for FSSAI certification on the packaging.`,
}

// genericFoodResponse is returned when the question mentions food or
// adulteration but no corpus content or topic template applies.
const genericFoodResponse = `The FSSAI (Food Safety and Standards Authority of India) provides guidelines for testing various food items for adulteration. Common food items that are tested include:

1. Milk and milk products - Tests for water, starch, detergents, and synthetic milk
2. Cereals and flours - Tests for sand, dirt, iron filings, and chalk powder
3. Spices - Tests for artificial colors, sawdust, and other fillers
4. Oils and fats - Tests for argemone oil, mineral oil, and rancidity
5. Honey - Tests for sugar syrup and water
6. Fruits and vegetables - Tests for artificial colors and ripening agents

Could you please specify which food item you're interested in testing? I can provide detailed testing methods for specific foods.`

// unrelatedResponse is returned for questions outside the food safety domain.
const unrelatedResponse = `I'm specialized in providing information about food adulteration detection based on FSSAI guidelines. I can help you with:

- Testing methods for specific food items
- Identifying common adulterants in foods
- Simple home-based tests for food safety
- Understanding health risks of food adulteration

Please ask a specific question about food adulteration testing, and I'll provide detailed information from official sources.`

// Replacement messages used when retrieved content turns out to be a table
// of contents rather than substantive manual text.
const (
	tocCerealResponse = "Based on the FSSAI manual, cereals can be adulterated with various substances including sand, dirt, iron filings, ergot (a fungal contaminant), and artificial colors. To test cereals for adulteration, you can use simple methods like visual inspection, water test, and chemical tests. Let me explain these methods in detail."

	tocGenericResponse = "I found information about various food adulteration testing methods in the FSSAI manual. Could you please specify which food item you're interested in testing? I can provide detailed testing methods for specific foods like milk, cereals, spices, oils, and more."
)

// Canned answers used when no retrieved content is available at all.
const (
	cannedMilkResponse = "To detect milk adulteration, you can perform simple tests at home:\n\n1. Water in milk: Put a drop of milk on a sloping surface. Pure milk flows slowly leaving a white trail, while adulterated milk flows quickly without leaving a trail.\n\n2. Starch in milk: Add a few drops of iodine solution. If it turns blue, starch is present.\n\n3. Detergent in milk: Shake 5-10ml of milk sample with an equal amount of water. Excessive froth indicates detergent presence.\n\nIf you suspect adulteration, report to local food safety authorities."

	cannedCerealResponse = "To test cereals for adulteration, you can use these simple methods:\n\n1. Visual Inspection: Spread a small amount of cereal on a white plate and examine under good light. Look for unusual colors, foreign particles, insect fragments, or inconsistent grain size. Pure cereals have uniform appearance.\n\n2. Water Test: Place a small amount in a glass of water and stir gently. Pure cereals sink while adulterants like stones, sand, or ergot (fungal bodies) will either float or sink at different rates.\n\n3. Chalk Powder Test: Add a few drops of diluted hydrochloric acid (vinegar can be used as a safer alternative) to the cereal. If it fizzes, chalk powder (calcium carbonate) is present.\n\n4. Iron Filings Test: Run a magnet over the cereal spread on a sheet of paper. Iron filings, sometimes added to increase weight, will stick to the magnet.\n\n5. Artificial Color Test: Take a small amount of cereal and rub between wet cotton. If color transfers to the cotton, artificial colors are present.\n\nFor packaged cereals, always check the packaging for signs of tampering, expiration dates, and purchase from reputable sources."

	cannedSpiceResponse = "Common adulterants in spices include colored sawdust, chalk powder, and artificial colors. To test:\n\n1. For turmeric: Mix with water. Pure turmeric gives a yellow color while adulterated turmeric with metanil yellow gives a lemon yellow color that doesn't fade.\n\n2. For chili powder: Add a teaspoon to a glass of water. Artificial colors will produce colored streaks in the water.\n\n3. For black pepper: Drop in water. Pure pepper sinks while papaya seeds (a common adulterant) float.\n\nAlways buy spices from reputable sources and report suspected adulteration to food safety authorities."

	cannedColoringResponse = "To test for artificial food coloring:\n\n1. Take a small sample of the food and place it on a white cotton cloth.\n\n2. Rub with a few drops of water. If the cloth gets colored, it indicates the presence of artificial colors.\n\n3. For liquid foods, dip a cotton ball and observe if color transfers.\n\nArtificial colors can cause allergic reactions and hyperactivity in children. If you detect unauthorized colors, report to FSSAI through their consumer complaint portal."
)

// Clarification answers.
const (
	clarifyBreakfastCerealResponse = `Yes, the cereal testing methods I described can be applied to breakfast cereals that you eat with milk.

Breakfast cereals can be adulterated with:
1. Artificial colors - Test by placing a small amount in water; artificial colors will dissolve and color the water
2. Excessive starch fillers - Test with iodine solution; a strong blue-black color indicates excessive starch
3. Rancid grains - Check for off odors or flavors
4. Insect fragments - Visual inspection under good light
5. Mycotoxins (from fungal contamination) - Look for discolored or moldy pieces

Commercial breakfast cereals are generally safer due to quality control, but these tests can be useful for bulk-purchased cereals or homemade granola mixes. Always store cereals in airtight containers in a cool, dry place to prevent contamination.`

	clarifyExplainResponse = `I'm providing information about food adulteration testing methods based on the FSSAI (Food Safety and Standards Authority of India) guidelines. These are official methods to detect common adulterants in various food items.

The tests I've described are designed to be simple enough to perform at home or in basic laboratory settings. They help identify if food items have been adulterated with harmful or fraudulent substances.

Could you please specify which part you'd like me to clarify further?`

	clarifyDefaultResponse = `I'm providing information about food adulteration testing based on official FSSAI guidelines. These tests help identify if food items have been adulterated with harmful substances.

If you're asking about a specific food item or testing method, please let me know which one you're interested in, and I'll provide more detailed information.`
)

// Variant phrasings for composed answers. An index in [0,4) selects one.
var (
	foodItemIntros = []string{
		"To test for adulteration in %s, the FSSAI recommends:",
		"Here's how you can check if your %s is adulterated:",
		"According to food safety guidelines, here's how to test %s for adulterants:",
		"The FSSAI manual provides these methods to detect adulteration in %s:",
	}

	genericIntros = []string{
		"According to the FSSAI food adulteration testing manual:",
		"Here's what the official food safety guidelines say:",
		"I found some valuable information in the food testing manual:",
		"The FSSAI manual provides these insights:",
	}

	foodItemOutros = []string{
		"\n\nThese tests will help you determine if your %s has been adulterated. Would you like to know about any other food items?",
		"\n\nBy following these methods, you can easily check your %s for common adulterants at home.",
		"\n\nRegularly testing your %s using these methods can help ensure you're consuming safe, unadulterated food.",
		"\n\nI hope these testing methods help you verify the quality of your %s. Let me know if you need any clarification!",
	}

	genericOutros = []string{
		"\n\nThis information is crucial for ensuring the safety of your food. Would you like to know more about any specific testing method?",
		"\n\nUnderstanding these testing methods can help you identify adulterated food products and protect your health.",
		"\n\nThese official testing methods are designed to help consumers like you identify potential food safety issues.",
		"\n\nI hope this helps you identify potential adulterants in your food. Let me know if you need more specific information!",
	}

	excerptIntros = []string{
		"I found this interesting information in the FSSAI manual:",
		"Here's a relevant excerpt from the food safety guidelines:",
		"According to the official testing methods:",
		"The food adulteration manual states:",
	}

	excerptOutros = []string{
		"\n\nThis testing method is designed to help you identify potential adulterants. Would you like me to explain any part in more detail?",
		"\n\nUnderstanding these official testing procedures can help you ensure your food is safe for consumption.",
		"\n\nThese guidelines are established by food safety experts to protect consumers from harmful adulterants.",
		"\n\nI hope this information helps you identify potential food safety issues. Let me know if you have any questions!",
	}
)
